package indicator

import (
	"errors"
)

// ErrInsufficientData is returned when a series is shorter than the period requires.
var ErrInsufficientData = errors.New("not enough data")

// ErrInvalidPeriod is returned for non-positive periods.
var ErrInvalidPeriod = errors.New("period must be positive")

// SMA returns the simple moving average of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// EMA returns the exponential moving average series, seeded with the first value.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}
	k := 2.0 / float64(period+1)
	ema := make([]float64, len(values))
	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1-k)
	}
	return ema, nil
}

// RSI returns the relative strength index over the last period price changes,
// using plain averages of gains and losses. Requires period+1 values.
func RSI(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(values) < period+1 {
		return 0, ErrInsufficientData
	}

	var gain, loss float64
	for i := len(values) - period; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	if loss == 0 {
		return 100, nil
	}
	rs := gain / loss
	return 100 - 100/(1+rs), nil
}

// MACDResult holds the latest MACD line and signal line values.
type MACDResult struct {
	MACD   float64
	Signal float64
}

// MACD returns the latest fast-minus-slow EMA difference and its signal EMA.
func MACD(values []float64, fast, slow, signal int) (MACDResult, error) {
	fastEMA, err := EMA(values, fast)
	if err != nil {
		return MACDResult{}, err
	}
	slowEMA, err := EMA(values, slow)
	if err != nil {
		return MACDResult{}, err
	}

	line := make([]float64, len(values))
	for i := range values {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	signalEMA, err := EMA(line, signal)
	if err != nil {
		return MACDResult{}, err
	}

	last := len(values) - 1
	return MACDResult{MACD: line[last], Signal: signalEMA[last]}, nil
}
