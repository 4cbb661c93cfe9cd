// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layer:
// request identifiers, their context plumbing and the resty client
// wrapper that stamps them onto outgoing requests.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier in the
// context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
//
// Example usage:
//
//	ctx = utils.WithRequestID(ctx, gen.Generate())
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true : value is found and is a non-empty string
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
