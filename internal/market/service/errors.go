package service

import (
	"errors"

	"golang-stock-insight/internal/market/repository"
)

var (
	// ErrDataUnavailable means the dataset failed to load at startup.
	ErrDataUnavailable = repository.ErrDataUnavailable
	// ErrCompanyNotFound means the company has no rows.
	ErrCompanyNotFound = repository.ErrCompanyNotFound
	// ErrAssistantDisabled means no assistant backend is configured.
	ErrAssistantDisabled = errors.New("assistant is not configured")
	// ErrAssistantFailed wraps errors from the assistant backend.
	ErrAssistantFailed = errors.New("assistant request failed")
	// ErrEmptyQuestion means a chat request carried no question.
	ErrEmptyQuestion = errors.New("question is required")
)

// ModelError reports a failure while fitting or querying the prediction model.
type ModelError struct {
	Company string
	Err     error
}

func (e *ModelError) Error() string {
	return e.Err.Error()
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
