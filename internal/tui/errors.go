// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	ErrUserQuit      = errors.New("user quit")
	ErrMissingDeps   = errors.New("tui: services, popup and clipboard are required")
	errNoSelection   = errors.New("select at least one account first")
	errNoValues      = errors.New("select at least one property value")
	errEmptyURI      = errors.New("otpauth uri is required")
	errBadNumber     = errors.New("digits, period and offset must be numbers")
	errEmptyUsername = errors.New("username and password are required")
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
