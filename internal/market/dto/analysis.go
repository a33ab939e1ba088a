package dto

// Trend values.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Sentiment values.
const (
	SentimentStrongBullish = "strong_bullish"
	SentimentBullish       = "bullish"
	SentimentNeutral       = "neutral"
	SentimentBearish       = "bearish"
	SentimentStrongBearish = "strong_bearish"
)

// RSISignal values.
const (
	RSIOverbought = "overbought"
	RSIOversold   = "oversold"
	RSINeutral    = "neutral"
)

// Volume trend values.
const (
	VolumeIncreasing = "increasing"
	VolumeDecreasing = "decreasing"
	VolumeMixed      = "mixed"
)

// IndicatorSignal is an indicator value with its reading.
type IndicatorSignal struct {
	Value  float64 `json:"value"`
	Signal string  `json:"signal"`
}

// VolumeAnalysis compares recent volume to the series average.
type VolumeAnalysis struct {
	Average float64   `json:"average"`
	Trend   string    `json:"trend"`
	Recent  []float64 `json:"recent"`
}

// AnalysisResponse is the technical read of a company's series.
type AnalysisResponse struct {
	Company         string          `json:"company"`
	LastDate        string          `json:"last_date"`
	LastPrice       float64         `json:"last_price"`
	PriceChange     float64         `json:"price_change"`
	ShortTermTrend  string          `json:"short_term_trend"`
	LongTermTrend   string          `json:"long_term_trend"`
	RSI             IndicatorSignal `json:"rsi"`
	MACD            IndicatorSignal `json:"macd"`
	Volume          VolumeAnalysis  `json:"volume"`
	Sentiment       string          `json:"sentiment"`
	Recommendations []string        `json:"recommendations"`
}
