package validator

import "testing"

type registerForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,alphaspace"`
	Code     string `validate:"omitempty,otpcode"`
}

func TestV10ValidatorCustomRules(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Valid", func(t *testing.T) {
		err := v.Validate(registerForm{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
			Code:     "483920",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("FieldKeysAreSnakeCase", func(t *testing.T) {
		err := v.Validate(registerForm{
			Email:    "not-an-email",
			Password: "short",
			FullName: "J4ne",
			Code:     "12345",
		})

		verr, ok := err.(V10ValidationError)
		if !ok {
			t.Fatalf("expected V10ValidationError, got %T", err)
		}

		for _, field := range []string{"email", "password", "full_name", "code"} {
			if _, found := verr.Values()[field]; !found {
				t.Fatalf("expected violation for %q, got %v", field, verr.Values())
			}
		}
	})

	t.Run("OTPCodeWidth", func(t *testing.T) {
		form := registerForm{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
		}

		for _, code := range []string{"12345", "1234567", "12a456"} {
			form.Code = code
			if err := v.Validate(form); err == nil {
				t.Fatalf("code %q should be rejected", code)
			}
		}
	})
}
