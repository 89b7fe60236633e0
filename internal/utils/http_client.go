package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so application helpers can be added
// without touching the embedded API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A zero timeout leaves
// resty's default (none) in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
