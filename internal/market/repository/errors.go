package repository

import "errors"

var (
	// ErrDataUnavailable means the dataset was never loaded.
	ErrDataUnavailable = errors.New("stock data unavailable")
	// ErrCompanyNotFound means the dataset has no rows for a company.
	ErrCompanyNotFound = errors.New("company not found")
)
