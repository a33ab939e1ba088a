package repository

import (
	"context"

	"golang-stock-insight/internal/entity"
)

// StockPriceRepository defines read access to the historical index dataset.
type StockPriceRepository interface {
	GetCompanies(ctx context.Context) ([]string, error)
	GetSeries(ctx context.Context, company string) ([]entity.StockPrice, error)
	Loaded() bool
	Count() int
}

// NewStockPriceRepository creates a repository over table. A nil table is a valid
// state meaning the dataset failed to load.
func NewStockPriceRepository(table *Table) StockPriceRepository {
	return &stockPriceRepository{table: table}
}

type stockPriceRepository struct {
	table *Table
}

// GetCompanies returns the distinct companies in first-seen order.
func (r *stockPriceRepository) GetCompanies(ctx context.Context) ([]string, error) {
	if r.table == nil {
		return nil, ErrDataUnavailable
	}
	companies := make([]string, len(r.table.companies))
	copy(companies, r.table.companies)
	return companies, nil
}

// GetSeries returns the rows for company sorted by date. The returned slice is
// shared with the table and must not be modified.
func (r *stockPriceRepository) GetSeries(ctx context.Context, company string) ([]entity.StockPrice, error) {
	if r.table == nil {
		return nil, ErrDataUnavailable
	}
	rows, ok := r.table.series[company]
	if !ok || len(rows) == 0 {
		return nil, ErrCompanyNotFound
	}
	return rows, nil
}

// Loaded reports whether the dataset is present.
func (r *stockPriceRepository) Loaded() bool {
	return r.table != nil
}

// Count returns the number of rows in the dataset.
func (r *stockPriceRepository) Count() int {
	if r.table == nil {
		return 0
	}
	return r.table.Len()
}
