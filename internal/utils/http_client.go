package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client with the defaults of the draft service client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends and accepts JSON and retries
// connection errors twice with a short backoff. HTTP error statuses are not
// retried, callers map them.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)

	return &HTTPClient{Client: client}
}
