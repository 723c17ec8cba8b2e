package controller

import (
	"net/http"

	"stockdock/model"
	"stockdock/service"

	"github.com/gin-gonic/gin"
)

type StockController struct {
	stockSvc service.StockService
	adminMw  gin.HandlerFunc
}

func NewStockController(s service.StockService, adminMw gin.HandlerFunc) *StockController {
	return &StockController{
		stockSvc: s,
		adminMw:  adminMw,
	}
}

func (ctrl *StockController) RegisterRoutes(router *gin.RouterGroup) {
	quotes := router.Group("/quotes")
	{
		quotes.GET("/all", ctrl.getAllQuotes)
		quotes.POST("/save", ctrl.adminMw, ctrl.saveQuotes)
		quotes.GET("/:symbol", ctrl.getSingleQuote)
		quotes.GET("/:symbol/snapshot", ctrl.getStockSnapshot)
		quotes.GET("/:symbol/bars", ctrl.getHistoricalBars)
		quotes.GET("/:symbol/bars/table", ctrl.getHistoricalTable)
	}
}

func (ctrl *StockController) getAllQuotes(c *gin.Context) {
	quotes, err := ctrl.stockSvc.FetchAllQuotes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (ctrl *StockController) getSingleQuote(c *gin.Context) {
	quote, err := ctrl.stockSvc.FetchQuoteBySymbol(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (ctrl *StockController) getStockSnapshot(c *gin.Context) {
	snapshot, err := ctrl.stockSvc.FetchStockSnapshot(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (ctrl *StockController) bindBarsQuery(c *gin.Context) model.BarsQuery {
	var query model.BarsQuery
	_ = c.ShouldBindQuery(&query)
	query.Symbol = c.Param("symbol")
	return query
}

func (ctrl *StockController) getHistoricalBars(c *gin.Context) {
	bars, err := ctrl.stockSvc.FetchHistoricalBars(c.Request.Context(), ctrl.bindBarsQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bars)
}

func (ctrl *StockController) getHistoricalTable(c *gin.Context) {
	rows, err := ctrl.stockSvc.FetchHistoricalTable(c.Request.Context(), ctrl.bindBarsQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(rows, "Historical bars fetched").Body)
}

func (ctrl *StockController) saveQuotes(c *gin.Context) {
	if err := ctrl.stockSvc.SaveAllQuotesToDb(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(nil, "All quotes saved to MongoDB.").Body)
}
