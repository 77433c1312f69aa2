package otp

import (
	"errors"
	"testing"
)

func TestNewNumeric(t *testing.T) {
	t.Run("RejectsUnsupportedWidth", func(t *testing.T) {
		for _, digits := range []int{-1, 0, 5, 11} {
			if _, err := NewNumeric(digits); !errors.Is(err, ErrInvalidDigits) {
				t.Fatalf("digits=%d: expected ErrInvalidDigits, got %v", digits, err)
			}
		}
	})

	t.Run("AcceptsSupportedWidth", func(t *testing.T) {
		for digits := 6; digits <= 10; digits++ {
			gen, err := NewNumeric(digits)
			if err != nil {
				t.Fatalf("digits=%d: unexpected error %v", digits, err)
			}
			if gen.Digits() != digits {
				t.Fatalf("digits=%d: got %d", digits, gen.Digits())
			}
		}
	})
}

func TestNumericGenerate(t *testing.T) {
	gen, err := NewNumeric(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 100 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("expected decimal digits only, got %q", code)
			}
		}
	}
}
