package http

import (
	"errors"
	"net/http"

	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for price predictions.
type PredictionHandler struct {
	predictionService service.PredictionService
	logger            *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/predict/:company", h.Predict)
}

// Predict godoc
// @Summary Predict next price
// @Description Fit a decision tree on the company's history and predict from its latest record
// @Tags predict
// @Produce  json
// @Param   company  path    string true    "Company (index) name"
// @Success 200 {object} dto.PredictionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predict/{company} [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	ctx := c.Request().Context()
	company := companyParam(c)
	resp, err := h.predictionService.Predict(ctx, company)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) || errors.Is(err, service.ErrDataUnavailable) {
			h.logger.WarnContext(ctx, "Company not found for prediction", logger.StringField("company", company), logger.ErrorField(err))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
		}
		h.logger.ErrorContext(ctx, "Error in prediction", logger.StringField("company", company), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
