// Package otpledger holds live one-time-passcode challenges in a sharded,
// concurrency-safe in-memory store keyed by subject and purpose.
package otpledger
