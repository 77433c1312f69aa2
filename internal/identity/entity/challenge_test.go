package entity

import "testing"

func TestChallengeKey(t *testing.T) {
	t.Run("PurposeScoped", func(t *testing.T) {
		reg := ChallengeKey("jane@example.com", OtpPurposeRegistration, "")
		reset := ChallengeKey("jane@example.com", OtpPurposePasswordReset, "")

		if reg == reset {
			t.Fatalf("keys for different purposes must differ")
		}
		if reg != "jane@example.com|Registration" {
			t.Fatalf("unexpected registration key %q", reg)
		}
	})

	t.Run("LoginIsRoleScoped", func(t *testing.T) {
		customer := ChallengeKey("jane@example.com", OtpPurposeLogin, RoleCustomer)
		store := ChallengeKey("jane@example.com", OtpPurposeLogin, RoleStoreUser)

		if customer == store {
			t.Fatalf("login keys for different roles must differ")
		}
		if customer != "jane@example.com|Login|Customer" {
			t.Fatalf("unexpected login key %q", customer)
		}
	})

	t.Run("RoleIgnoredOutsideLogin", func(t *testing.T) {
		plain := ChallengeKey("jane@example.com", OtpPurposeRegistration, "")
		withRole := ChallengeKey("jane@example.com", OtpPurposeRegistration, RoleCustomer)

		if plain != withRole {
			t.Fatalf("role must only scope login challenges")
		}
	})
}

func TestUserStatusEnsure(t *testing.T) {
	if got := UserStatus(99).Ensure(); got != UserStatusUnknown {
		t.Fatalf("out-of-range status should ensure to Unknown, got %v", got)
	}
	if got := UserStatusActive.Ensure(); got != UserStatusActive {
		t.Fatalf("known status should be preserved, got %v", got)
	}
}
