package otp

import "errors"

var (
	// ErrEmptySecret is returned when a configuration carries no secret.
	ErrEmptySecret = errors.New("otp: empty secret")
	// ErrInvalidSecret is returned when a secret cannot be decoded.
	ErrInvalidSecret = errors.New("otp: invalid secret encoding")
	// ErrInvalidDigits is returned for a code length outside [MinDigits, MaxDigits].
	ErrInvalidDigits = errors.New("otp: invalid digit count")
	// ErrInvalidPeriod is returned for a non-positive period.
	ErrInvalidPeriod = errors.New("otp: invalid period")
	// ErrInvalidTime is returned when the offset moves the clock before the epoch.
	ErrInvalidTime = errors.New("otp: time before unix epoch")
	// ErrInvalidURI is returned for malformed otpauth URIs.
	ErrInvalidURI = errors.New("otp: invalid otpauth uri")
	// ErrUnsupportedType is returned for OTP types the operation cannot handle.
	ErrUnsupportedType = errors.New("otp: unsupported type")
	// ErrUnsupportedAlgorithm is returned for hash algorithms other than SHA1/SHA256/SHA512.
	ErrUnsupportedAlgorithm = errors.New("otp: unsupported algorithm")
)
