package entity

import "strings"

// ChallengeKey builds the ledger key for a pending passcode challenge.
//
// Keys are purpose-scoped so a code verified for one flow can never grant
// another. Login challenges are additionally scoped by the claimed role,
// so switching the claimed role between send and verify invalidates the
// pending code.
func ChallengeKey(email string, purpose OtpPurpose, role string) string {
	var b strings.Builder
	b.WriteString(email)
	b.WriteString("|")
	b.WriteString(purpose.String())

	if purpose == OtpPurposeLogin && role != "" {
		b.WriteString("|")
		b.WriteString(role)
	}

	return b.String()
}
