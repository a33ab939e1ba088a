package service

import (
	"context"

	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/logger"
)

// CompanyService defines the interface for the company directory.
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]string, error)
}

// NewCompanyService creates a new company service.
func NewCompanyService(repo repository.StockPriceRepository, logger *logger.Logger) CompanyService {
	return &companyService{
		repo:   repo,
		logger: logger,
	}
}

type companyService struct {
	repo   repository.StockPriceRepository
	logger *logger.Logger
}

// ListCompanies returns every distinct company in the dataset.
func (s *companyService) ListCompanies(ctx context.Context) ([]string, error) {
	companies, err := s.repo.GetCompanies(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list companies", logger.ErrorField(err))
		return nil, err
	}
	s.logger.DebugContext(ctx, "Found companies", logger.IntField("count", len(companies)))
	return companies, nil
}
