package validation

import "errors"

var (
	ErrEmptyBatch    = errors.New("urls is required")
	ErrBatchTooLarge = errors.New("batch size exceeds maximum")
	ErrURLTooLong    = errors.New("url exceeds maximum length")
)

type BatchValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return "batch validation failed"
}
