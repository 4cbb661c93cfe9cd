// Package otp generates one-time codes for accounts with two-factor
// authentication: RFC 6238 TOTP (HMAC SHA1/SHA256/SHA512) and the Steam Guard
// variant. It also computes the remaining time of the current window, formats
// codes for display and converts configurations to and from otpauth URIs.
//
// Codes are never cached. The low-level functions return errors; [Generator]
// wraps them for callers that prefer an empty code and a log entry.
package otp
