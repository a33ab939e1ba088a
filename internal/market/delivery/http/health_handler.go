package http

import (
	"net/http"

	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/repository"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and whether the dataset loaded.
type HealthHandler struct {
	repo repository.StockPriceRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(repo repository.StockPriceRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "ok",
		DataLoaded: h.repo.Loaded(),
		Records:    h.repo.Count(),
	})
}
