// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server's message is kept after the sentinel.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return withDetail(ErrSessionExpired, msg)
	case errors.Is(err, adapter.ErrLocked):
		return withDetail(ErrAccountLocked, msg)
	case errors.Is(err, adapter.ErrNotFound):
		return withDetail(ErrAccountNotFound, msg)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return withDetail(ErrInvalidRequest, msg)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return withDetail(ErrServer, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "not found: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

func withDetail(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
