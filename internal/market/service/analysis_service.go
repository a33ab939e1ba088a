package service

import (
	"context"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/indicator"
	"golang-stock-insight/pkg/logger"
)

const (
	rsiOverboughtLevel = 70
	rsiOversoldLevel   = 30
	neutralRSI         = 50

	strongSentimentRatio = 0.6
	sentimentRatio       = 0.4
)

// AnalysisService defines the interface for technical analysis of a series.
type AnalysisService interface {
	Analyze(ctx context.Context, company string) (*dto.AnalysisResponse, error)
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(cfg *config.Config, repo repository.StockPriceRepository, log *logger.Logger) AnalysisService {
	return &analysisService{
		cfg:    cfg.Analysis,
		repo:   repo,
		logger: log,
	}
}

type analysisService struct {
	cfg    config.Analysis
	repo   repository.StockPriceRepository
	logger *logger.Logger
}

type weightedSignal struct {
	signal string
	weight float64
}

// Analyze computes trend, momentum and volume readings for the company's series.
func (s *analysisService) Analyze(ctx context.Context, company string) (*dto.AnalysisResponse, error) {
	rows, err := s.repo.GetSeries(ctx, company)
	if err != nil {
		s.logger.DebugContext(ctx, "No data found for company", logger.StringField("company", company), logger.ErrorField(err))
		return nil, err
	}

	prices, volumes := closesAndVolumes(rows)
	last := rows[len(rows)-1]

	resp := &dto.AnalysisResponse{
		Company:        company,
		LastDate:       last.Date,
		LastPrice:      last.Close,
		PriceChange:    priceChange(prices),
		ShortTermTrend: trendAgainstSMA(prices, s.cfg.ShortSMAPeriod),
		LongTermTrend:  trendAgainstSMA(prices, s.cfg.LongSMAPeriod),
		RSI:            s.rsi(prices),
		MACD:           s.macd(prices),
		Volume:         analyzeVolume(volumes, s.cfg.VolumeWindow),
	}

	rsiSignal := dto.TrendNeutral
	switch resp.RSI.Signal {
	case dto.RSIOverbought:
		rsiSignal = dto.TrendBearish
	case dto.RSIOversold:
		rsiSignal = dto.TrendBullish
	}
	volumeSignal := dto.TrendNeutral
	switch resp.Volume.Trend {
	case dto.VolumeIncreasing:
		volumeSignal = dto.TrendBullish
	case dto.VolumeDecreasing:
		volumeSignal = dto.TrendBearish
	}

	resp.Sentiment = sentiment([]weightedSignal{
		{signal: resp.ShortTermTrend, weight: 1},
		{signal: resp.LongTermTrend, weight: 1.5},
		{signal: rsiSignal, weight: 1},
		{signal: resp.MACD.Signal, weight: 1.5},
		{signal: volumeSignal, weight: 1},
	})
	resp.Recommendations = recommendations(resp.Sentiment, resp.RSI.Value, resp.MACD.Signal)

	s.logger.DebugContext(ctx, "Analysis computed",
		logger.StringField("company", company),
		logger.StringField("sentiment", resp.Sentiment),
	)
	return resp, nil
}

func (s *analysisService) rsi(prices []float64) dto.IndicatorSignal {
	value, err := indicator.RSI(prices, s.cfg.RSIPeriod)
	if err != nil {
		return dto.IndicatorSignal{Value: neutralRSI, Signal: dto.RSINeutral}
	}
	signal := dto.RSINeutral
	if value > rsiOverboughtLevel {
		signal = dto.RSIOverbought
	} else if value < rsiOversoldLevel {
		signal = dto.RSIOversold
	}
	return dto.IndicatorSignal{Value: value, Signal: signal}
}

func (s *analysisService) macd(prices []float64) dto.IndicatorSignal {
	result, err := indicator.MACD(prices, s.cfg.MACDFast, s.cfg.MACDSlow, s.cfg.MACDSignal)
	if err != nil {
		return dto.IndicatorSignal{Signal: dto.TrendNeutral}
	}
	signal := dto.TrendNeutral
	if result.MACD > result.Signal {
		signal = dto.TrendBullish
	} else if result.MACD < result.Signal {
		signal = dto.TrendBearish
	}
	return dto.IndicatorSignal{Value: result.MACD, Signal: signal}
}

func closesAndVolumes(rows []entity.StockPrice) ([]float64, []float64) {
	closes := make([]float64, len(rows))
	volumes := make([]float64, len(rows))
	for i, r := range rows {
		closes[i] = r.Close
		volumes[i] = r.Volume
	}
	return closes, volumes
}

// priceChange is the percent change of the last close against the one before it.
func priceChange(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}
	prev, cur := prices[len(prices)-2], prices[len(prices)-1]
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

func trendAgainstSMA(prices []float64, period int) string {
	sma, err := indicator.SMA(prices, period)
	if err != nil {
		return dto.TrendNeutral
	}
	if prices[len(prices)-1] > sma {
		return dto.TrendBullish
	}
	return dto.TrendBearish
}

func analyzeVolume(volumes []float64, window int) dto.VolumeAnalysis {
	if len(volumes) == 0 {
		return dto.VolumeAnalysis{Trend: dto.VolumeMixed}
	}
	if window <= 0 || window > len(volumes) {
		window = len(volumes)
	}

	sum := 0.0
	for _, v := range volumes {
		sum += v
	}
	avg := sum / float64(len(volumes))

	recent := make([]float64, window)
	copy(recent, volumes[len(volumes)-window:])

	above, below := true, true
	for _, v := range recent {
		if v <= avg {
			above = false
		}
		if v >= avg {
			below = false
		}
	}

	trend := dto.VolumeMixed
	if above {
		trend = dto.VolumeIncreasing
	} else if below {
		trend = dto.VolumeDecreasing
	}
	return dto.VolumeAnalysis{Average: avg, Trend: trend, Recent: recent}
}

func sentiment(signals []weightedSignal) string {
	var bullish, bearish, total float64
	for _, s := range signals {
		total += s.weight
		switch s.signal {
		case dto.TrendBullish:
			bullish += s.weight
		case dto.TrendBearish:
			bearish += s.weight
		}
	}
	if total == 0 {
		return dto.SentimentNeutral
	}

	bullishRatio, bearishRatio := bullish/total, bearish/total
	switch {
	case bullishRatio > strongSentimentRatio:
		return dto.SentimentStrongBullish
	case bullishRatio > sentimentRatio:
		return dto.SentimentBullish
	case bearishRatio > strongSentimentRatio:
		return dto.SentimentStrongBearish
	case bearishRatio > sentimentRatio:
		return dto.SentimentBearish
	default:
		return dto.SentimentNeutral
	}
}

func recommendations(sentiment string, rsi float64, macdSignal string) []string {
	var recs []string
	switch sentiment {
	case dto.SentimentStrongBullish:
		recs = append(recs, "Strong buying opportunity based on multiple technical indicators")
	case dto.SentimentBullish:
		recs = append(recs, "Consider buying with proper risk management")
	case dto.SentimentStrongBearish:
		recs = append(recs, "Consider reducing position or waiting for better entry")
	case dto.SentimentBearish:
		recs = append(recs, "Exercise caution and monitor for reversal signals")
	default:
		recs = append(recs, "Neutral market conditions, maintain current position")
	}

	if rsi > rsiOverboughtLevel {
		recs = append(recs, "RSI indicates overbought conditions, consider taking profits")
	} else if rsi < rsiOversoldLevel {
		recs = append(recs, "RSI indicates oversold conditions, potential buying opportunity")
	}

	switch macdSignal {
	case dto.TrendBullish:
		recs = append(recs, "MACD shows upward momentum")
	case dto.TrendBearish:
		recs = append(recs, "MACD indicates downward pressure")
	}
	return recs
}
