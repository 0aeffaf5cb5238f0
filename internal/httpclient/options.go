package httpclient

import (
	"context"
	"net/http"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options controls how resources are requested.
type Options struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
	FollowRedirects    bool
	MaxRedirects       int // 0 means the net/http default of 10
	Proxy              string
	Headers            http.Header
	UserAgent          string
	MaxBodyBytes       int64 // 0 keeps the whole body
	EnableHTTP2        bool
	Pool               PoolOptions
}

// PoolOptions tunes connection reuse on the transport.
type PoolOptions struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
}

// DefaultOptions returns browser-like defaults suited to fetching page assets.
func DefaultOptions() Options {
	headers := make(http.Header)
	headers.Set("Accept", "*/*")
	headers.Set("Accept-Language", "en-US,en;q=0.9")

	return Options{
		Timeout:            30 * time.Second,
		InsecureSkipVerify: true,
		FollowRedirects:    true,
		MaxRedirects:       10,
		Headers:            headers,
		UserAgent:          defaultUserAgent,
		EnableHTTP2:        true,
		Pool: PoolOptions{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DialTimeout:         10 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// FetchContentInput holds parameters for FetchContent.
type FetchContentInput struct {
	URL     string
	Context context.Context
}

// FetchContentResult is the outcome of a single resource GET.
type FetchContentResult struct {
	Content        []byte
	ContentType    string
	HTTPStatusCode int
	FinalURL       string
	Truncated      bool
}

// response is one completed round trip with its body already read.
type response struct {
	status    int
	header    http.Header
	body      []byte
	finalURL  string
	truncated bool
}
