package http

import (
	"net/http"

	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for technical analysis.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/analysis/:company", h.GetAnalysis)
}

// GetAnalysis godoc
// @Summary Technical analysis
// @Description Trend, RSI, MACD and volume readings with an overall sentiment
// @Tags analysis
// @Produce  json
// @Param   company  path    string true    "Company (index) name"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /analysis/{company} [get]
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	company := companyParam(c)
	resp, err := h.analysisService.Analyze(c.Request().Context(), company)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "Failed to analyze company", logger.StringField("company", company), logger.ErrorField(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}
	return c.JSON(http.StatusOK, resp)
}
