package controller

import (
	"bytes"
	"context"
	"net/http"

	"stockdock/model"
	"stockdock/service"
	"stockdock/view"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardSvc service.DashboardService
}

func NewDashboardController(s service.DashboardService) *DashboardController {
	return &DashboardController{dashboardSvc: s}
}

func (ctrl *DashboardController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-single-stock-page",
		Method:      http.MethodGet,
		Path:        "/api/dashboard/{symbol}",
		Summary:     "Get Single Stock Dashboard",
		Description: "Price history card plus the snapshot and quote table widgets",
		Tags:        []string{"Dashboard"},
	}, ctrl.GetSingleStockPage)
}

// RegisterPageRoutes serves the rendered page outside the /api group.
func (ctrl *DashboardController) RegisterPageRoutes(router gin.IRouter) {
	router.GET("/dashboard/:symbol", ctrl.renderSingleStockPage)
}

func (ctrl *DashboardController) GetSingleStockPage(ctx context.Context, input *model.ChartInput) (*model.DashboardOutput, error) {
	page, err := ctrl.dashboardSvc.GetSingleStockPage(ctx, input.Symbol, input.Span)
	if err != nil {
		return nil, humaError(err)
	}
	return &model.DashboardOutput{Body: *page}, nil
}

func (ctrl *DashboardController) renderSingleStockPage(c *gin.Context) {
	page, err := ctrl.dashboardSvc.GetSingleStockPage(c.Request.Context(), c.Param("symbol"), c.Query("span"))
	if err != nil {
		writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := view.RenderSingleStockPage(&buf, page); err != nil {
		log.Error().Err(err).Str("symbol", c.Param("symbol")).Msg("page render failed")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Unable to render page").Body)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
