package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newEchoServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(fixedIDs("a"))
	client2 := NewHTTPClient(fixedIDs("b"))

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_GeneratesRequestID(t *testing.T) {
	srv, got := newEchoServer(t)

	_, err := NewHTTPClient(fixedIDs("generated")).R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "generated", *got)
}

func TestHTTPClient_RequestIDFromContext(t *testing.T) {
	srv, got := newEchoServer(t)
	ctx := WithRequestID(context.Background(), "from-context")

	_, err := NewHTTPClient(fixedIDs("generated")).R().SetContext(ctx).Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "from-context", *got)
}

func TestHTTPClient_ExplicitHeaderKept(t *testing.T) {
	srv, got := newEchoServer(t)

	_, err := NewHTTPClient(fixedIDs("generated")).R().SetHeader(RequestIDHeader, "explicit").Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "explicit", *got)
}

func TestUUIDGenerator_Version7(t *testing.T) {
	gen := NewUUIDGenerator()

	a, b := gen.Generate(), gen.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}
