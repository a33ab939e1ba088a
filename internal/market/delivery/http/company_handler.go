package http

import (
	"net/http"

	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CompanyHandler handles HTTP requests for the company directory.
type CompanyHandler struct {
	companyService service.CompanyService
	logger         *logger.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService, logger *logger.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, logger: logger}
}

// RegisterRoutes registers the company routes to the Echo group.
func (h *CompanyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/companies", h.GetCompanies)
}

// GetCompanies godoc
// @Summary List companies
// @Description Get every distinct index name in the dataset
// @Tags companies
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {array} string "Empty list when the dataset is unavailable"
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	companies, err := h.companyService.ListCompanies(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to list companies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, []string{})
	}
	return c.JSON(http.StatusOK, companies)
}
