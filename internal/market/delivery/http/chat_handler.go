package http

import (
	"errors"
	"net/http"

	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles HTTP requests for the market assistant.
type ChatHandler struct {
	chatService service.ChatService
	logger      *logger.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// RegisterRoutes registers the chat routes to the Echo group.
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Ask)
}

// Ask godoc
// @Summary Ask the assistant
// @Description Answer a stock or business question, optionally in the context of one company
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   request  body    dto.ChatRequest   true    "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WarnContext(c.Request().Context(), "Invalid chat request payload", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.chatService.Ask(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrCompanyNotFound), errors.Is(err, service.ErrDataUnavailable):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
		case errors.Is(err, service.ErrAssistantDisabled):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		default:
			h.logger.ErrorContext(c.Request().Context(), "Failed to answer chat question", logger.StringField("company", req.Company), logger.ErrorField(err))
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, resp)
}
