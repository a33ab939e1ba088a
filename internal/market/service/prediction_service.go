package service

import (
	"context"
	"fmt"

	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/decisiontree"
	"golang-stock-insight/pkg/logger"

	"golang.org/x/time/rate"
)

// PredictionService defines the interface for next-day price prediction.
type PredictionService interface {
	Predict(ctx context.Context, company string) (*dto.PredictionResponse, error)
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(cfg *config.Config, repo repository.StockPriceRepository, log *logger.Logger) PredictionService {
	limit := rate.Inf
	if cfg.Predictor.MaxRequestPerSecond > 0 {
		limit = rate.Limit(cfg.Predictor.MaxRequestPerSecond)
	}
	burst := cfg.Predictor.MaxConcurrentBurst
	if burst < 1 {
		burst = 1
	}

	return &predictionService{
		treeConfig: decisiontree.Config{
			MaxDepth:        cfg.Predictor.MaxDepth,
			MinSamplesSplit: cfg.Predictor.MinSamplesSplit,
		},
		repo:           repo,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, burst),
	}
}

type predictionService struct {
	treeConfig     decisiontree.Config
	repo           repository.StockPriceRepository
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// Predict fits a fresh regression tree on the company's series and evaluates it on
// the most recent row. Each row's own close is both a feature and the target, so
// the estimate mostly echoes the last close.
func (s *predictionService) Predict(ctx context.Context, company string) (*dto.PredictionResponse, error) {
	rows, err := s.repo.GetSeries(ctx, company)
	if err != nil {
		s.logger.DebugContext(ctx, "No data found for company", logger.StringField("company", company), logger.ErrorField(err))
		return nil, err
	}

	if err := s.requestLimiter.Wait(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to wait for prediction limit", logger.ErrorField(err), logger.StringField("company", company))
		return nil, fmt.Errorf("failed to wait for prediction limit: %w", err)
	}

	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, row := range rows {
		X[i] = row.Features()
		y[i] = row.Close
	}

	tree := decisiontree.NewRegressor(s.treeConfig)
	if err := tree.Fit(X, y); err != nil {
		s.logger.ErrorContext(ctx, "Error in prediction", logger.ErrorField(err), logger.StringField("company", company))
		return nil, &ModelError{Company: company, Err: err}
	}

	last := rows[len(rows)-1]
	prediction, err := tree.Predict(X[len(X)-1])
	if err != nil {
		s.logger.ErrorContext(ctx, "Error in prediction", logger.ErrorField(err), logger.StringField("company", company))
		return nil, &ModelError{Company: company, Err: err}
	}

	s.logger.DebugContext(ctx, "Prediction computed",
		logger.StringField("company", company),
		logger.IntField("samples", len(rows)),
		logger.IntField("tree_depth", tree.Depth()),
		logger.Float64Field("prediction", prediction),
	)

	return &dto.PredictionResponse{
		Prediction: prediction,
		LastPrice:  last.Close,
	}, nil
}
