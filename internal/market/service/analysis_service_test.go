package service

import (
	"testing"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_RisingSeries(t *testing.T) {
	rows := series("A", 60, func(i int) float64 { return 100 + float64(i) })
	svc := NewAnalysisService(testConfig(), newRepo(rows...), testLog)

	got, err := svc.Analyze(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, "A", got.Company)
	assert.Equal(t, rows[59].Date, got.LastDate)
	assert.Equal(t, 159.0, got.LastPrice)
	assert.InDelta(t, 1.0/158.0*100, got.PriceChange, 1e-9)
	assert.Equal(t, dto.TrendBullish, got.ShortTermTrend)
	assert.Equal(t, dto.TrendBullish, got.LongTermTrend)
	assert.Equal(t, 100.0, got.RSI.Value)
	assert.Equal(t, dto.RSIOverbought, got.RSI.Signal)
	assert.Equal(t, dto.TrendBullish, got.MACD.Signal)
	assert.Equal(t, dto.VolumeIncreasing, got.Volume.Trend)
	assert.Len(t, got.Volume.Recent, 5)
	// 1 + 1.5 + 1.5 + 1 bullish, 1 bearish (overbought) out of 6.
	assert.Equal(t, dto.SentimentStrongBullish, got.Sentiment)
	assert.Equal(t, []string{
		"Strong buying opportunity based on multiple technical indicators",
		"RSI indicates overbought conditions, consider taking profits",
		"MACD shows upward momentum",
	}, got.Recommendations)
}

func TestAnalyze_FallingSeries(t *testing.T) {
	rows := series("A", 60, func(i int) float64 { return 200 - float64(i) })
	for i := range rows {
		rows[i].Volume = 5000 - float64(i)
	}
	svc := NewAnalysisService(testConfig(), newRepo(rows...), testLog)

	got, err := svc.Analyze(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, dto.TrendBearish, got.ShortTermTrend)
	assert.Equal(t, dto.TrendBearish, got.LongTermTrend)
	assert.Equal(t, dto.RSIOversold, got.RSI.Signal)
	assert.Equal(t, dto.TrendBearish, got.MACD.Signal)
	assert.Equal(t, dto.VolumeDecreasing, got.Volume.Trend)
	assert.Equal(t, dto.SentimentStrongBearish, got.Sentiment)
}

func TestAnalyze_ShortSeriesIsNeutral(t *testing.T) {
	svc := NewAnalysisService(testConfig(), newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01", Close: 1.5, Volume: 100},
	), testLog)

	got, err := svc.Analyze(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.PriceChange)
	assert.Equal(t, dto.TrendNeutral, got.ShortTermTrend)
	assert.Equal(t, dto.TrendNeutral, got.LongTermTrend)
	assert.Equal(t, dto.RSINeutral, got.RSI.Signal)
	assert.Equal(t, dto.TrendNeutral, got.MACD.Signal)
	assert.Equal(t, dto.VolumeMixed, got.Volume.Trend)
	assert.Equal(t, dto.SentimentNeutral, got.Sentiment)
	assert.Equal(t, []string{"Neutral market conditions, maintain current position"}, got.Recommendations)
}

func TestAnalyze_NotFound(t *testing.T) {
	svc := NewAnalysisService(testConfig(), newRepo(), testLog)
	_, err := svc.Analyze(ctx, "A")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
