package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// AssistantRepository generates free-text answers from a language model.
type AssistantRepository interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type geminiAssistantRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAssistantRepository creates an assistant backed by the Gemini API.
func NewGeminiAssistantRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) AssistantRepository {
	limit := rate.Inf
	if cfg.Gemini.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute))
	}
	return &geminiAssistantRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, 1),
		genAiClient:    genAiClient,
	}
}

// GenerateAnswer sends prompt to the configured Gemini model.
func (r *geminiAssistantRepository) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err), logger.StringField("model", r.cfg.Gemini.Model))
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", errors.New("no content found in Gemini response")
	}
	return answer, nil
}
