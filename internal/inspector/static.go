package inspector

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog"
)

// StaticInspector downloads the page once and reads its markup. It sees only
// resources declared in the HTML, not ones added by scripts at runtime.
type StaticInspector struct {
	config config.InspectorConfig
	logger zerolog.Logger
}

// NewStaticInspector creates a StaticInspector.
func NewStaticInspector(cfg config.InspectorConfig, logger zerolog.Logger) *StaticInspector {
	return &StaticInspector{
		config: cfg,
		logger: logger.With().Str("component", "StaticInspector").Logger(),
	}
}

func (si *StaticInspector) newCollector() *colly.Collector {
	options := []colly.CollectorOption{
		colly.MaxDepth(1),
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
	}
	if si.config.UserAgent != "" {
		options = append(options, colly.UserAgent(si.config.UserAgent))
	}

	c := colly.NewCollector(options...)
	timeout := time.Duration(si.config.RequestTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultInspectorRequestTimeoutSecs * time.Second
	}
	c.SetRequestTimeout(timeout)
	c.WithTransport(&http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: si.config.Headless.IgnoreHTTPSErrors},
	})
	return c
}

// Inspect fetches pageURL and returns its resources as seeds together with
// the page URL list.
func (si *StaticInspector) Inspect(ctx context.Context, pageURL string) (*Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		body     []byte
		finalURL = pageURL
		visitErr error
	)
	c := si.newCollector()
	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		finalURL = r.Request.URL.String()
		si.logger.Debug().Str("url", finalURL).Int("status_code", r.StatusCode).Int("size", len(r.Body)).Msg("Page fetched")
	})
	c.OnError(func(r *colly.Response, err error) {
		visitErr = common.NewFetchError(pageURL, r.StatusCode, "page request failed", err)
	})

	if err := c.Visit(pageURL); err != nil && visitErr == nil {
		visitErr = common.NewFetchError(pageURL, 0, "page request failed", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if visitErr != nil {
		return nil, visitErr
	}

	return buildInspection(finalURL, body)
}

// buildInspection derives seeds and page URLs from rendered or raw markup.
func buildInspection(pageURL string, html []byte) (*Inspection, error) {
	resources, err := ExtractResourceURLs(html, pageURL)
	if err != nil {
		return nil, err
	}
	pageURLs, err := ExtractPageURLs(html, pageURL)
	if err != nil {
		return nil, err
	}
	return &Inspection{
		PageURL:  pageURL,
		Seeds:    toResourceRefs(resources),
		PageURLs: pageURLs,
	}, nil
}
