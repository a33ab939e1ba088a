package dto

// PredictionResponse is the next-day price estimate for a company.
type PredictionResponse struct {
	Prediction float64 `json:"prediction"`
	LastPrice  float64 `json:"last_price"`
}
