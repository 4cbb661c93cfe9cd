// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")

	id, ok := GetRequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "abc" {
		t.Errorf("expected id=abc, got %s", id)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	_, ok := GetRequestIDFromContext(WithRequestID(context.Background(), ""))

	if ok {
		t.Error("expected ok=false for empty id")
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	_, ok := GetRequestIDFromContext(ctx)

	if ok {
		t.Error("expected ok=false for wrong type")
	}
}
