package jwt

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeUUID struct{}

func (fakeUUID) Generate() string {
	return "00000000-0000-0000-0000-000000000000"
}

func testSecret() []byte {
	return bytes.Repeat([]byte("s"), 64)
}

func TestNewHS512(t *testing.T) {
	t.Run("RejectsShortKey", func(t *testing.T) {
		_, err := NewHS512(Config{Secret: []byte("too-short")})
		if !errors.Is(err, ErrSigningKeyTooShort) {
			t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
		}
	})

	t.Run("AcceptsLongKey", func(t *testing.T) {
		if _, err := NewHS512(Config{Secret: testSecret()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSymmetricRoundTrip(t *testing.T) {
	// Arrange
	clk := &fakeClock{now: time.Now()}
	s, err := NewHS512(Config{
		Secret:    testSecret(),
		Issuer:    "gocommerce",
		Audiences: []string{"gocommerce-api"},
		TTL:       15 * time.Minute,
		Clock:     clk,
		UUID:      fakeUUID{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Act
	token, err := s.Generate(42, "jane@example.com", []string{"Customer", "StoreUser"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.UserEmail != "jane@example.com" {
		t.Fatalf("expected email claim, got %q", claims.UserEmail)
	}
	if !slices.Equal(claims.Roles, []string{"Customer", "StoreUser"}) {
		t.Fatalf("expected roles claim, got %v", claims.Roles)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestSymmetricVerify(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	s, err := NewHS512(Config{
		Secret:    testSecret(),
		Issuer:    "gocommerce",
		Audiences: []string{"gocommerce-api"},
		TTL:       15 * time.Minute,
		Clock:     clk,
		UUID:      fakeUUID{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("ExpiredToken", func(t *testing.T) {
		clk.now = time.Now().Add(-time.Hour)
		token, err := s.Generate(42, "jane@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clk.now = time.Now()

		if _, err := s.Verify(token); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, err := s.Generate(42, "jane@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := s.Verify(token + "x"); err == nil {
			t.Fatalf("expected error for tampered token")
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		other, err := NewHS512(Config{
			Secret:    bytes.Repeat([]byte("x"), 64),
			Issuer:    "gocommerce",
			Audiences: []string{"gocommerce-api"},
			TTL:       15 * time.Minute,
			Clock:     clk,
			UUID:      fakeUUID{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, err := other.Generate(42, "jane@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := s.Verify(token); err == nil {
			t.Fatalf("expected error for token signed with another key")
		}
	})
}
