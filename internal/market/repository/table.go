package repository

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang-stock-insight/internal/entity"

	"github.com/gocarina/gocsv"
)

// RequiredColumns are the header names the dataset must carry.
var RequiredColumns = []string{
	"index_name",
	"index_date",
	"open_index_value",
	"high_index_value",
	"low_index_value",
	"closing_index_value",
	"volume",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is the in-memory dataset. It is built once and never modified.
type Table struct {
	records   []entity.StockPrice
	companies []string
	series    map[string][]entity.StockPrice
	dropped   int
}

// NewTable indexes records by company. Rows without a company or date are dropped;
// every other value is kept verbatim.
// Each company's rows are sorted by date; equal dates keep their input order.
func NewTable(records []entity.StockPrice) *Table {
	t := &Table{
		records: make([]entity.StockPrice, 0, len(records)),
		series:  make(map[string][]entity.StockPrice),
	}
	for _, r := range records {
		if r.Company == "" || r.Date == "" {
			t.dropped++
			continue
		}
		if _, ok := t.series[r.Company]; !ok {
			t.companies = append(t.companies, r.Company)
		}
		t.records = append(t.records, r)
		t.series[r.Company] = append(t.series[r.Company], r)
	}
	for _, rows := range t.series {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date < rows[j].Date
		})
	}
	return t
}

// LoadTable reads the CSV at path. Every failure wraps ErrDataUnavailable.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDataUnavailable, path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %w", ErrDataUnavailable, path, err)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing columns %s", ErrDataUnavailable, path, strings.Join(missing, ", "))
	}

	var records []entity.StockPrice
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrDataUnavailable, path, err)
	}

	return NewTable(records), nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Len returns the number of rows kept.
func (t *Table) Len() int {
	return len(t.records)
}

// Dropped returns the number of rows rejected for a missing company or date.
func (t *Table) Dropped() int {
	return t.dropped
}
