package config

import (
	"golang-stock-insight/pkg/config"
)

// Dataset holds the location of the historical index CSV.
type Dataset struct {
	Path string `mapstructure:"path"`
}

// Predictor holds decision-tree and throttling settings for price prediction.
type Predictor struct {
	MaxDepth            int     `mapstructure:"max_depth"`
	MinSamplesSplit     int     `mapstructure:"min_samples_split"`
	MaxRequestPerSecond float64 `mapstructure:"max_request_per_second"`
	MaxConcurrentBurst  int     `mapstructure:"max_concurrent_burst"`
}

// Analysis holds indicator periods for technical analysis.
type Analysis struct {
	ShortSMAPeriod int `mapstructure:"short_sma_period"`
	LongSMAPeriod  int `mapstructure:"long_sma_period"`
	RSIPeriod      int `mapstructure:"rsi_period"`
	MACDFast       int `mapstructure:"macd_fast"`
	MACDSlow       int `mapstructure:"macd_slow"`
	MACDSignal     int `mapstructure:"macd_signal"`
	VolumeWindow   int `mapstructure:"volume_window"`
}

// Gemini holds the configuration for the Gemini assistant.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	CacheTTL            string `mapstructure:"cache_ttl"`
}

// Config holds the full configuration for the market service.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	API       config.API    `mapstructure:"api"`
	CORS      config.CORS   `mapstructure:"cors"`
	Dataset   Dataset       `mapstructure:"dataset"`
	Predictor Predictor     `mapstructure:"predictor"`
	Analysis  Analysis      `mapstructure:"analysis"`
	Gemini    Gemini        `mapstructure:"gemini"`
}

var defaults = map[string]interface{}{
	"app.name":                         "market-service",
	"app.env":                          "development",
	"logger.level":                     "info",
	"logger.encoding":                  "json",
	"api.port":                         5000,
	"api.shutdown_timeout":             "10s",
	"cors.allow_origins":               []string{"*"},
	"dataset.path":                     "data/dump.csv",
	"predictor.max_depth":              5,
	"predictor.min_samples_split":      5,
	"predictor.max_request_per_second": 0,
	"predictor.max_concurrent_burst":   1,
	"analysis.short_sma_period":        20,
	"analysis.long_sma_period":         50,
	"analysis.rsi_period":              14,
	"analysis.macd_fast":               12,
	"analysis.macd_slow":               26,
	"analysis.macd_signal":             9,
	"analysis.volume_window":           5,
	"gemini.api_key":                   "",
	"gemini.model":                     "gemini-1.5-flash-latest",
	"gemini.max_request_per_minute":    30,
	"gemini.cache_ttl":                 "24h",
}

// Load loads the market service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
