package config

import "time"

// HTTPClientConfig defines how seed resources and pages are requested
type HTTPClientConfig struct {
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	FollowRedirects    bool              `json:"follow_redirects" yaml:"follow_redirects"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MaxContentSize     int               `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=0"`
	MaxRedirects       int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0,max=50"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Retry              RetryConfig       `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// RetryConfig defines configuration for HTTP request retries.
// Retries are off unless MaxRetries is positive.
type RetryConfig struct {
	MaxRetries       int   `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
	BaseDelayMs      int   `json:"base_delay_ms,omitempty" yaml:"base_delay_ms,omitempty" validate:"omitempty,min=1"`
	MaxDelayMs       int   `json:"max_delay_ms,omitempty" yaml:"max_delay_ms,omitempty" validate:"omitempty,min=1"`
	EnableJitter     bool  `json:"enable_jitter" yaml:"enable_jitter"`
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty" validate:"omitempty,dive,min=100,max=599"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		CustomHeaders:      map[string]string{},
		EnableHTTP2:        true,
		FollowRedirects:    true,
		InsecureSkipVerify: true,
		MaxContentSize:     DefaultHTTPMaxContentSize,
		MaxRedirects:       DefaultHTTPMaxRedirects,
		TimeoutSecs:        DefaultHTTPTimeoutSecs,
		UserAgent:          DefaultHTTPUserAgent,
		Retry:              NewDefaultRetryConfig(),
	}
}

// NewDefaultRetryConfig creates default retry configuration
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:       0,
		BaseDelayMs:      DefaultHTTPRetryBaseMillis,
		MaxDelayMs:       DefaultHTTPRetryMaxMillis,
		EnableJitter:     true,
		RetryStatusCodes: []int{429, 502, 503, 504},
	}
}

// GetTimeout returns the client timeout as time.Duration
func (hc HTTPClientConfig) GetTimeout() time.Duration {
	if hc.TimeoutSecs <= 0 {
		return DefaultHTTPTimeoutSecs * time.Second
	}
	return time.Duration(hc.TimeoutSecs) * time.Second
}
