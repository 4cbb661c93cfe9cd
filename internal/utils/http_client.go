package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header that carries the request identifier.
const RequestIDHeader = "X-Request-ID"

// IDGenerator produces request identifiers.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Every request leaving the client carries [RequestIDHeader]. The value is
// taken from the request context (see [WithRequestID]) or generated.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(req.Context())
		if !ok {
			id = ids.Generate()
		}
		req.SetHeader(RequestIDHeader, id)
		return nil
	})
	return &HTTPClient{Client: client}
}
