package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// ChatService defines the interface for the market assistant.
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// NewChatService creates a new chat service. A nil assistant disables the service.
func NewChatService(stockRepo repository.StockPriceRepository, assistant repository.AssistantRepository, answers *cache.Cache, log *logger.Logger) ChatService {
	return &chatService{
		stockRepo: stockRepo,
		assistant: assistant,
		answers:   answers,
		logger:    log,
	}
}

type chatService struct {
	stockRepo repository.StockPriceRepository
	assistant repository.AssistantRepository
	answers   *cache.Cache
	logger    *logger.Logger
}

// Ask answers a question, reusing a cached answer for an identical question.
func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if s.assistant == nil {
		return nil, ErrAssistantDisabled
	}

	company := req.Company
	key := company + "|" + strings.ToLower(question)
	if answer, ok := s.answers.Get(key); ok {
		s.logger.DebugContext(ctx, "Assistant cache hit", logger.StringField("company", company))
		return &dto.ChatResponse{Answer: answer.(string), Cached: true}, nil
	}

	var latest *entity.StockPrice
	var records int
	if company != "" {
		rows, err := s.stockRepo.GetSeries(ctx, company)
		if err != nil {
			return nil, err
		}
		latest = &rows[len(rows)-1]
		records = len(rows)
	}

	prompt := repository.BuildAssistantPrompt(question, latest, records)
	answer, err := s.assistant.GenerateAnswer(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Failed to generate assistant answer", logger.ErrorField(err), logger.StringField("company", company))
		return nil, fmt.Errorf("%w: %w", ErrAssistantFailed, err)
	}

	s.answers.SetDefault(key, answer)
	return &dto.ChatResponse{Answer: answer}, nil
}
