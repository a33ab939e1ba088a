package entity

// StockPrice is one daily row of an index. The csv tags carry the source file's
// column names; the json tags are the canonical names served over the API.
type StockPrice struct {
	Company string  `csv:"index_name" json:"company"`
	Date    string  `csv:"index_date" json:"date"`
	Open    float64 `csv:"open_index_value" json:"open"`
	High    float64 `csv:"high_index_value" json:"high"`
	Low     float64 `csv:"low_index_value" json:"low"`
	Close   float64 `csv:"closing_index_value" json:"close"`
	Volume  float64 `csv:"volume" json:"volume"`
}

// Features returns the predictor input vector in a fixed column order.
func (s StockPrice) Features() []float64 {
	return []float64{s.Open, s.High, s.Low, s.Close, s.Volume}
}
