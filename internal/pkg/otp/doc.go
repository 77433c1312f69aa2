// Package otp generates single-use numeric passcodes delivered out of band.
//
// Unlike RFC 6238 TOTP, these codes carry no shared secret; each one is drawn
// from a cryptographically secure source and is valid only while its ledger
// entry lives.
package otp
