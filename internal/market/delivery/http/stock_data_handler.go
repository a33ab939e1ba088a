package http

import (
	"net/http"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockDataHandler handles HTTP requests for per-company series.
type StockDataHandler struct {
	stockDataService service.StockDataService
	logger           *logger.Logger
}

// NewStockDataHandler creates a new StockDataHandler.
func NewStockDataHandler(stockDataService service.StockDataService, logger *logger.Logger) *StockDataHandler {
	return &StockDataHandler{stockDataService: stockDataService, logger: logger}
}

// RegisterRoutes registers the stock data routes to the Echo group.
func (h *StockDataHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stock-data/:company", h.GetStockData)
}

// GetStockData godoc
// @Summary Get stock data
// @Description Get every record of a company sorted by date
// @Tags stock-data
// @Produce  json
// @Param   company  path    string true    "Company (index) name"
// @Success 200 {array} entity.StockPrice
// @Failure 404 {array} entity.StockPrice "Empty list when the company is unknown"
// @Router /stock-data/{company} [get]
func (h *StockDataHandler) GetStockData(c echo.Context) error {
	company := companyParam(c)
	rows, err := h.stockDataService.GetSeries(c.Request().Context(), company)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "Failed to get stock data", logger.StringField("company", company), logger.ErrorField(err))
		return c.JSON(http.StatusNotFound, []entity.StockPrice{})
	}
	return c.JSON(http.StatusOK, rows)
}
