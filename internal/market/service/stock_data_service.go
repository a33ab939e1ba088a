package service

import (
	"context"
	"errors"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/logger"
)

// StockDataService defines the interface for per-company series queries.
type StockDataService interface {
	GetSeries(ctx context.Context, company string) ([]entity.StockPrice, error)
}

// NewStockDataService creates a new stock data service.
func NewStockDataService(repo repository.StockPriceRepository, logger *logger.Logger) StockDataService {
	return &stockDataService{
		repo:   repo,
		logger: logger,
	}
}

type stockDataService struct {
	repo   repository.StockPriceRepository
	logger *logger.Logger
}

// GetSeries returns the company's rows in ascending date order.
func (s *stockDataService) GetSeries(ctx context.Context, company string) ([]entity.StockPrice, error) {
	rows, err := s.repo.GetSeries(ctx, company)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			s.logger.DebugContext(ctx, "No data found for company", logger.StringField("company", company))
		} else {
			s.logger.ErrorContext(ctx, "Failed to get stock data", logger.ErrorField(err), logger.StringField("company", company))
		}
		return nil, err
	}
	s.logger.DebugContext(ctx, "Found records", logger.StringField("company", company), logger.IntField("count", len(rows)))
	return rows, nil
}
