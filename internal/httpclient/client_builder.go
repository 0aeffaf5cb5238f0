package httpclient

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPClientBuilder assembles an HTTPClient step by step, starting from DefaultOptions.
type HTTPClientBuilder struct {
	opts   Options
	retry  *RetryPolicy
	logger zerolog.Logger
}

// NewHTTPClientBuilder creates a builder with default options
func NewHTTPClientBuilder(logger zerolog.Logger) *HTTPClientBuilder {
	return &HTTPClientBuilder{opts: DefaultOptions(), logger: logger}
}

func (b *HTTPClientBuilder) WithTimeout(timeout time.Duration) *HTTPClientBuilder {
	b.opts.Timeout = timeout
	return b
}

func (b *HTTPClientBuilder) WithInsecureSkipVerify(skip bool) *HTTPClientBuilder {
	b.opts.InsecureSkipVerify = skip
	return b
}

// WithRedirects sets whether redirects are followed and how many hops are allowed.
func (b *HTTPClientBuilder) WithRedirects(follow bool, max int) *HTTPClientBuilder {
	b.opts.FollowRedirects = follow
	b.opts.MaxRedirects = max
	return b
}

func (b *HTTPClientBuilder) WithUserAgent(userAgent string) *HTTPClientBuilder {
	b.opts.UserAgent = userAgent
	return b
}

// WithHeaders sets headers sent on every request, replacing defaults of the same name.
func (b *HTTPClientBuilder) WithHeaders(headers map[string]string) *HTTPClientBuilder {
	if b.opts.Headers == nil {
		b.opts.Headers = make(http.Header, len(headers))
	}
	for k, v := range headers {
		b.opts.Headers.Set(k, v)
	}
	return b
}

func (b *HTTPClientBuilder) WithProxy(proxy string) *HTTPClientBuilder {
	b.opts.Proxy = proxy
	return b
}

// WithMaxBodyBytes caps how much of each body is kept, 0 for no limit.
func (b *HTTPClientBuilder) WithMaxBodyBytes(n int64) *HTTPClientBuilder {
	b.opts.MaxBodyBytes = n
	return b
}

func (b *HTTPClientBuilder) WithHTTP2(enabled bool) *HTTPClientBuilder {
	b.opts.EnableHTTP2 = enabled
	return b
}

// WithRetry attaches a retry handler. A policy with MaxRetries <= 0 turns retries off.
func (b *HTTPClientBuilder) WithRetry(policy RetryPolicy) *HTTPClientBuilder {
	if policy.MaxRetries <= 0 {
		b.retry = nil
		return b
	}
	b.retry = &policy
	return b
}

// Build creates the client.
func (b *HTTPClientBuilder) Build() (*HTTPClient, error) {
	client, err := NewHTTPClient(b.opts, b.logger)
	if err != nil {
		return nil, err
	}
	if b.retry != nil {
		client.retry = NewRetryHandler(*b.retry, b.logger)
	}
	return client, nil
}
