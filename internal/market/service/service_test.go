package service

import (
	"context"
	"fmt"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Predictor: config.Predictor{
			MaxDepth:        5,
			MinSamplesSplit: 5,
		},
		Analysis: config.Analysis{
			ShortSMAPeriod: 20,
			LongSMAPeriod:  50,
			RSIPeriod:      14,
			MACDFast:       12,
			MACDSlow:       26,
			MACDSignal:     9,
			VolumeWindow:   5,
		},
	}
}

func newRepo(rows ...entity.StockPrice) repository.StockPriceRepository {
	return repository.NewStockPriceRepository(repository.NewTable(rows))
}

// series builds n daily rows for company whose closes follow closeAt.
func series(company string, n int, closeAt func(i int) float64) []entity.StockPrice {
	rows := make([]entity.StockPrice, n)
	for i := 0; i < n; i++ {
		c := closeAt(i)
		rows[i] = entity.StockPrice{
			Company: company,
			Date:    fmt.Sprintf("2020-%02d-%02d", i/28+1, i%28+1),
			Open:    c - 1,
			High:    c + 2,
			Low:     c - 2,
			Close:   c,
			Volume:  1000 + float64(i),
		}
	}
	return rows
}

var (
	ctx     = context.Background()
	testLog = logger.NewNop()
)
