package validation_test

import (
	"errors"
	"strings"
	"testing"

	"vitrine-url-api/internal/validation"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"absolute", "https://loja.example.com/fiat/argo-2024", true},
		{"path", "/fiat/argo-2024", true},
		{"relative path", "fiat/argo-2024", true},
		{"with query", "/fiat/argo-2024?utm_source=x", true},
		{"unresolved placeholder", "/{vehicle_id}-{slug-do-carro}", true},
		{"empty", "", true},
		{"bad escape", "/fiat/%zz", false},
		{"bad host", "http://[::1", false},
		{"control char", "/fiat/\x7f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validation.IsValidURL(tt.url); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestURLListValidator_ValidateBatch(t *testing.T) {
	v := validation.NewURLListValidator(20, 3)

	if err := v.ValidateBatch([]string{"/a", "/b"}); err != nil {
		t.Errorf("ValidateBatch(valid) = %v, want nil", err)
	}

	if err := v.ValidateBatch(nil); err != validation.ErrEmptyBatch {
		t.Errorf("ValidateBatch(nil) = %v, want %v", err, validation.ErrEmptyBatch)
	}

	if err := v.ValidateBatch([]string{"/a", "/b", "/c", "/d"}); err != validation.ErrBatchTooLarge {
		t.Errorf("ValidateBatch(4 urls) = %v, want %v", err, validation.ErrBatchTooLarge)
	}

	err := v.ValidateBatch([]string{"/a", "/" + strings.Repeat("x", 30)})
	var batchErr *validation.BatchValidationError
	if !errors.As(err, &batchErr) {
		t.Fatalf("ValidateBatch(long url) = %v, want BatchValidationError", err)
	}
	if len(batchErr.Errors) != 1 || batchErr.Errors[0].Index != 1 {
		t.Errorf("unexpected batch errors: %+v", batchErr.Errors)
	}
}
