package httpclient

import (
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/rs/zerolog"
)

// NewClientFromConfig builds the resource client from application configuration.
func NewClientFromConfig(cfg config.HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	b := NewHTTPClientBuilder(logger).
		WithTimeout(cfg.GetTimeout()).
		WithInsecureSkipVerify(cfg.InsecureSkipVerify).
		WithRedirects(cfg.FollowRedirects, cfg.MaxRedirects).
		WithMaxBodyBytes(int64(cfg.MaxContentSize)).
		WithHTTP2(cfg.EnableHTTP2).
		WithHeaders(cfg.CustomHeaders).
		WithProxy(cfg.Proxy)
	if cfg.UserAgent != "" {
		b.WithUserAgent(cfg.UserAgent)
	}
	b.WithRetry(RetryPolicy{
		MaxRetries:  cfg.Retry.MaxRetries,
		BaseDelay:   time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Retry.MaxDelayMs) * time.Millisecond,
		Jitter:      cfg.Retry.EnableJitter,
		StatusCodes: cfg.Retry.RetryStatusCodes,
	})

	client, err := b.Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build HTTP client")
	}
	return client, nil
}
