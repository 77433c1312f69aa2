package hash

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHMACSHA256(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		h := NewHMACSHA256("secret")

		hashed, err := h.Hash("483920")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !h.Verify(string(hashed), "483920") {
			t.Fatalf("expected hash to verify")
		}
		if h.Verify(string(hashed), "483921") {
			t.Fatalf("expected different plaintext to fail")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		h := NewHMACSHA256("secret")

		first, _ := h.Hash("483920")
		second, _ := h.Hash("483920")
		if !bytes.Equal(first, second) {
			t.Fatalf("same input should hash identically")
		}
	})

	t.Run("SecretChangesDigest", func(t *testing.T) {
		first, _ := NewHMACSHA256("secret-a").Hash("483920")
		second, _ := NewHMACSHA256("secret-b").Hash("483920")
		if bytes.Equal(first, second) {
			t.Fatalf("different secrets should produce different digests")
		}
	})
}

func TestBcrypt(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		h := NewBcrypt(bcrypt.MinCost, "pepper")

		hashed, err := h.Hash("Sup3rSecret!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !h.Verify(string(hashed), "Sup3rSecret!") {
			t.Fatalf("expected password to verify")
		}
		if h.Verify(string(hashed), "WrongPassword") {
			t.Fatalf("expected wrong password to fail")
		}
	})

	t.Run("PepperIsPartOfSecret", func(t *testing.T) {
		hashed, err := NewBcrypt(bcrypt.MinCost, "pepper-a").Hash("Sup3rSecret!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if NewBcrypt(bcrypt.MinCost, "pepper-b").Verify(string(hashed), "Sup3rSecret!") {
			t.Fatalf("expected verify with another pepper to fail")
		}
	})
}
