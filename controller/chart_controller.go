package controller

import (
	"context"
	"net/http"

	"stockdock/model"
	"stockdock/service"
	"stockdock/util"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ChartController struct {
	chartSvc service.ChartService
	adminMw  gin.HandlerFunc
}

func NewChartController(s service.ChartService, adminMw gin.HandlerFunc) *ChartController {
	return &ChartController{
		chartSvc: s,
		adminMw:  adminMw,
	}
}

func (ctrl *ChartController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-price-history-chart",
		Method:      http.MethodGet,
		Path:        "/api/charts/{symbol}/price-history",
		Summary:     "Get Price History Chart",
		Description: "Chart payload of the price history card: series, options and metric blocks",
		Tags:        []string{"Charts"},
	}, ctrl.GetPriceHistoryChart)

	huma.Register(api, huma.Operation{
		OperationID: "get-price-history-series",
		Method:      http.MethodGet,
		Path:        "/api/charts/{symbol}/series",
		Summary:     "Get Price Series",
		Description: "The [timestamp, price] series derived from the price history",
		Tags:        []string{"Charts"},
	}, ctrl.GetSeries)

	huma.Register(api, huma.Operation{
		OperationID: "get-chart-options",
		Method:      http.MethodGet,
		Path:        "/api/charts/options",
		Summary:     "Get Chart Options",
		Tags:        []string{"Charts"},
	}, ctrl.GetChartOptions)
}

// RegisterGinRoutes adds the file endpoints, which huma does not model well.
func (ctrl *ChartController) RegisterGinRoutes(router *gin.RouterGroup) {
	charts := router.Group("/charts")
	{
		charts.GET("/:symbol/export", ctrl.exportPriceHistory)
		charts.POST("/load-from-csv", ctrl.adminMw, ctrl.loadFromCsv)
	}
}

func (ctrl *ChartController) GetPriceHistoryChart(ctx context.Context, input *model.ChartInput) (*model.PriceHistoryChartOutput, error) {
	resp, err := ctrl.chartSvc.GetPriceHistoryChart(ctx, input.Symbol, input.Span)
	if err != nil {
		return nil, humaError(err)
	}
	return &model.PriceHistoryChartOutput{Body: *resp}, nil
}

func (ctrl *ChartController) GetSeries(ctx context.Context, input *model.ChartInput) (*model.SeriesOutput, error) {
	series, err := ctrl.chartSvc.GetSeries(ctx, input.Symbol, input.Span)
	if err != nil {
		return nil, humaError(err)
	}
	return &model.SeriesOutput{Body: series}, nil
}

func (ctrl *ChartController) GetChartOptions(ctx context.Context, input *struct{}) (*model.ChartOptionsOutput, error) {
	return &model.ChartOptionsOutput{Body: service.DefaultChartOptions()}, nil
}

func (ctrl *ChartController) exportPriceHistory(c *gin.Context) {
	data, err := ctrl.chartSvc.GetPriceHistoryData(c.Request.Context(), c.Param("symbol"), c.Query("span"))
	if err != nil {
		writeError(c, err)
		return
	}

	buf, err := util.PriceHistoryWorkbook(data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+data.StockSymbol+`_price_history.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (ctrl *ChartController) loadFromCsv(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("File is required").Body)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to open file").Body)
		return
	}
	defer file.Close()

	meta := model.PriceHistoryChartData{
		StockSymbol: c.PostForm("symbol"),
		StockName:   c.PostForm("name"),
		Currency:    c.PostForm("currency"),
	}
	if err := ctrl.chartSvc.LoadFromCsv(c.Request.Context(), meta, fileHeader.Filename, file); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(nil, "Price history loaded").Body)
}
