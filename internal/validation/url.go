package validation

import "net/url"

// dummyBase lets relative paths parse the same way absolute URLs do
var dummyBase = &url.URL{Scheme: "http", Host: "localhost"}

// IsValidURL reports whether raw parses as an absolute URL or as a path
// relative to a fixed base. It is a syntax check only.
func IsValidURL(raw string) bool {
	ref, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return dummyBase.ResolveReference(ref) != nil
}

// URLListValidator bounds the URL lists accepted by the API
type URLListValidator struct {
	maxLength    int
	maxBatchSize int
}

func NewURLListValidator(maxLength, maxBatchSize int) *URLListValidator {
	return &URLListValidator{
		maxLength:    maxLength,
		maxBatchSize: maxBatchSize,
	}
}

// ValidateBatch checks the list size and the length of every entry
func (v *URLListValidator) ValidateBatch(urls []string) error {
	if len(urls) == 0 {
		return ErrEmptyBatch
	}

	if len(urls) > v.maxBatchSize {
		return ErrBatchTooLarge
	}

	var batchErrors []IndexedError
	for i, u := range urls {
		if len(u) > v.maxLength {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: ErrURLTooLong})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}

	return nil
}
