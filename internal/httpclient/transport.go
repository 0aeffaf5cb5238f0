package httpclient

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

func newTransport(opts Options, logger zerolog.Logger) (*http.Transport, error) {
	transport := &http.Transport{
		MaxIdleConns:        opts.Pool.MaxIdleConns,
		MaxIdleConnsPerHost: opts.Pool.MaxIdleConnsPerHost,
		MaxConnsPerHost:     opts.Pool.MaxConnsPerHost,
		IdleConnTimeout:     opts.Pool.IdleConnTimeout,
		TLSHandshakeTimeout: opts.Pool.TLSHandshakeTimeout,
		DialContext:         (&net.Dialer{Timeout: opts.Pool.DialTimeout}).DialContext,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
	}

	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, common.WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if opts.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("HTTP/2 unavailable, using HTTP/1.1")
		}
	}
	return transport, nil
}

// redirectPolicy returns the CheckRedirect hook, or nil for the net/http default.
func redirectPolicy(opts Options) func(*http.Request, []*http.Request) error {
	if !opts.FollowRedirects {
		return func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	if opts.MaxRedirects <= 0 {
		return nil
	}
	limit := opts.MaxRedirects
	return func(_ *http.Request, via []*http.Request) error {
		if len(via) >= limit {
			return fmt.Errorf("stopped after %d redirects", limit)
		}
		return nil
	}
}
