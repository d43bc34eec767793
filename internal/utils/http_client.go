package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent = "topologic-client"

	retryCount   = 2
	retryWait    = 100 * time.Millisecond
	retryMaxWait = time.Second
)

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself as
// topologic-client and retries requests that failed to connect or got
// 503 Service Unavailable.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/api/models")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(shouldRetry)

	return &HTTPClient{Client: client}
}

func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() == http.StatusServiceUnavailable
}
