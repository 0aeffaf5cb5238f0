package httpclient

import (
	"context"
	"io"
	"net/http"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/rs/zerolog"
)

const (
	initialBufferSize = 32 * 1024
	maxPooledBuffer   = 4 * 1024 * 1024
	errorBodyPreview  = 512
)

// HTTPClient fetches resource bodies over a shared transport.
type HTTPClient struct {
	client  *http.Client
	opts    Options
	logger  zerolog.Logger
	retry   *RetryHandler
	buffers *common.BufferPool
}

// NewHTTPClient creates a client for opts. Use the builder to attach retries.
func NewHTTPClient(opts Options, logger zerolog.Logger) (*HTTPClient, error) {
	logger = logger.With().Str("component", "HTTPClient").Logger()

	transport, err := newTransport(opts, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Dur("timeout", opts.Timeout).
		Bool("follow_redirects", opts.FollowRedirects).
		Bool("http2", opts.EnableHTTP2).
		Int64("max_body_bytes", opts.MaxBodyBytes).
		Msg("HTTP client created")

	return &HTTPClient{
		client: &http.Client{
			Transport:     transport,
			Timeout:       opts.Timeout,
			CheckRedirect: redirectPolicy(opts),
		},
		opts:    opts,
		logger:  logger,
		buffers: common.NewBufferPool(initialBufferSize, maxPooledBuffer),
	}, nil
}

// FetchContent GETs input.URL and returns the body of a 2xx response.
// Any other status yields a *common.HTTPError together with the result so the
// caller can still record the status code.
func (c *HTTPClient) FetchContent(input FetchContentInput) (*FetchContentResult, error) {
	ctx := input.Context
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		resp *response
		err  error
	)
	if c.retry != nil {
		resp, err = c.retry.Run(ctx, input.URL, func() (*response, error) {
			return c.get(ctx, input.URL)
		})
	} else {
		resp, err = c.get(ctx, input.URL)
	}
	if err != nil && resp == nil {
		c.logger.Debug().Err(err).Str("url", input.URL).Msg("Fetch failed")
		return nil, err
	}

	result := &FetchContentResult{
		ContentType:    resp.header.Get("Content-Type"),
		HTTPStatusCode: resp.status,
		FinalURL:       resp.finalURL,
	}
	if err != nil {
		return result, err
	}
	if resp.status < 200 || resp.status > 299 {
		c.logger.Debug().Str("url", input.URL).Int("status_code", resp.status).Msg("Non-success status")
		return result, common.NewHTTPErrorWithURL(resp.status, preview(resp.body), input.URL)
	}

	result.Content = resp.body
	result.Truncated = resp.truncated
	if resp.truncated {
		c.logger.Warn().
			Str("url", input.URL).
			Int64("max_body_bytes", c.opts.MaxBodyBytes).
			Msg("Body exceeds limit, truncated")
	}
	return result, nil
}

func (c *HTTPClient) get(ctx context.Context, target string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, common.WrapError(err, "failed to create HTTP request")
	}
	for key, values := range c.opts.Headers {
		req.Header[key] = append([]string(nil), values...)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, common.NewNetworkError(target, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, truncated, err := c.readBody(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(target, "failed to read response body", err)
	}

	return &response{
		status:    resp.StatusCode,
		header:    resp.Header,
		body:      body,
		finalURL:  resp.Request.URL.String(),
		truncated: truncated,
	}, nil
}

// readBody reads at most MaxBodyBytes through a pooled buffer. One extra byte
// is requested to detect truncation.
func (c *HTTPClient) readBody(r io.Reader) ([]byte, bool, error) {
	buf := c.buffers.Get()
	defer c.buffers.Put(buf)

	limit := c.opts.MaxBodyBytes
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	if _, err := io.Copy(buf, r); err != nil {
		return nil, false, err
	}

	data := buf.Bytes()
	truncated := limit > 0 && int64(len(data)) > limit
	if truncated {
		data = data[:limit]
	}
	// buf goes back to the pool, so the caller gets a copy.
	return append([]byte(nil), data...), truncated, nil
}

func preview(body []byte) string {
	if len(body) > errorBodyPreview {
		body = body[:errorBodyPreview]
	}
	return string(body)
}
