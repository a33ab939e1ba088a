package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_SingleRow(t *testing.T) {
	svc := NewPredictionService(testConfig(), newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01", Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
	), testLog)

	got, err := svc.Predict(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.LastPrice)
	assert.False(t, math.IsNaN(got.Prediction) || math.IsInf(got.Prediction, 0))
	assert.Equal(t, 1.5, got.Prediction)
}

func TestPredict_LastPriceIsChronologicallyLastClose(t *testing.T) {
	rows := series("A", 40, func(i int) float64 { return 100 + float64(i%7) })
	// Shuffle the input order; the latest date must still win.
	rows[0], rows[39] = rows[39], rows[0]
	rows[5], rows[20] = rows[20], rows[5]

	svc := NewPredictionService(testConfig(), newRepo(rows...), testLog)
	got, err := svc.Predict(ctx, "A")
	require.NoError(t, err)

	latest := rows[0]
	for _, r := range rows {
		if r.Date > latest.Date {
			latest = r
		}
	}
	assert.Equal(t, latest.Close, got.LastPrice)
	assert.GreaterOrEqual(t, got.Prediction, 100.0)
	assert.LessOrEqual(t, got.Prediction, 106.0)
}

func TestPredict_Deterministic(t *testing.T) {
	svc := NewPredictionService(testConfig(), newRepo(series("A", 60, func(i int) float64 {
		return 50 + 10*math.Sin(float64(i)/5)
	})...), testLog)

	first, err := svc.Predict(ctx, "A")
	require.NoError(t, err)
	second, err := svc.Predict(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPredict_NotFound(t *testing.T) {
	svc := NewPredictionService(testConfig(), newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01", Close: 1},
	), testLog)

	_, err := svc.Predict(ctx, "B")
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	absent := NewPredictionService(testConfig(), repository.NewStockPriceRepository(nil), testLog)
	_, err = absent.Predict(ctx, "A")
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestPredict_ModelError(t *testing.T) {
	svc := NewPredictionService(testConfig(), newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01", Close: 1, Volume: math.NaN()},
	), testLog)

	_, err := svc.Predict(ctx, "A")
	var modelErr *ModelError
	require.True(t, errors.As(err, &modelErr))
	assert.Equal(t, "A", modelErr.Company)
	assert.NotEmpty(t, modelErr.Error())
}

func TestPredict_RateLimitHonoursContext(t *testing.T) {
	cfg := testConfig()
	cfg.Predictor.MaxRequestPerSecond = 0.001
	svc := NewPredictionService(cfg, newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01", Close: 1},
	), testLog)

	_, err := svc.Predict(ctx, "A")
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Predict(canceled, "A")
	assert.Error(t, err)
	var modelErr *ModelError
	assert.False(t, errors.As(err, &modelErr))
}
