package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidDigits is returned when the configured code width is unsupported.
var ErrInvalidDigits = errors.New("otp: digits must be between 6 and 10")

// Generator produces one-time passcodes for out-of-band delivery.
type Generator interface {
	// Generate returns a new passcode.
	Generate() (string, error)
}

// Numeric generates fixed-width decimal passcodes.
//
// Codes are drawn uniformly from [0, 10^digits) using crypto/rand, so the
// generator is safe for concurrent use and codes are not predictable across
// calls. Leading zeros are preserved.
type Numeric struct {
	digits int
	max    *big.Int
}

// NewNumeric constructs a Numeric generator producing codes of the given width.
func NewNumeric(digits int) (*Numeric, error) {
	if digits < 6 || digits > 10 {
		return nil, ErrInvalidDigits
	}

	max := big.NewInt(10)
	max.Exp(max, big.NewInt(int64(digits)), nil)

	return &Numeric{digits: digits, max: max}, nil
}

// Generate returns a new zero-padded decimal passcode.
func (g *Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", g.digits, n), nil
}

// Digits returns the configured code width.
func (g *Numeric) Digits() int {
	return g.digits
}
