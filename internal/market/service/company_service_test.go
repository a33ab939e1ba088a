package service

import (
	"testing"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCompanies(t *testing.T) {
	svc := NewCompanyService(newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-01"},
		entity.StockPrice{Company: "B", Date: "2020-01-01"},
		entity.StockPrice{Company: "A", Date: "2020-01-02"},
	), testLog)

	companies, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, companies)
}

func TestListCompanies_DataUnavailable(t *testing.T) {
	svc := NewCompanyService(repository.NewStockPriceRepository(nil), testLog)

	companies, err := svc.ListCompanies(ctx)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Nil(t, companies)
}

func TestGetSeries(t *testing.T) {
	svc := NewStockDataService(newRepo(
		entity.StockPrice{Company: "A", Date: "2020-01-02", Close: 2},
		entity.StockPrice{Company: "B", Date: "2020-01-01", Close: 9},
		entity.StockPrice{Company: "A", Date: "2020-01-01", Close: 1},
	), testLog)

	rows, err := svc.GetSeries(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, r := range rows {
		assert.Equal(t, "A", r.Company)
		if i > 0 {
			assert.LessOrEqual(t, rows[i-1].Date, r.Date)
		}
	}

	_, err = svc.GetSeries(ctx, "Z")
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	absent := NewStockDataService(repository.NewStockPriceRepository(nil), testLog)
	_, err = absent.GetSeries(ctx, "A")
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
