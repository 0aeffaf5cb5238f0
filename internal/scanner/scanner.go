package scanner

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/aleister1102/pathscan/internal/classifier"
	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/extractor"
	"github.com/aleister1102/pathscan/internal/httpclient"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/aleister1102/pathscan/internal/urlhandler"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ScanIDFormat is the timestamp layout used for scan identifiers.
const ScanIDFormat = "20060102-150405"

// Scanner runs one fetch pass over a seed set, extracts candidate paths from
// every body and classifies them. A Scanner may run several scans, one at a
// time; all per-scan state is discarded when Scan returns.
type Scanner struct {
	config    config.ScannerConfig
	fetcher   Fetcher
	extractor *extractor.PathExtractor
	logger    zerolog.Logger
	baseURL   *url.URL

	mu     sync.RWMutex
	status models.ScanStatus
}

// New creates a Scanner. An unparsable base URL is a configuration error.
func New(cfg config.ScannerConfig, fetcher Fetcher, pathExtractor *extractor.PathExtractor, logger zerolog.Logger) (*Scanner, error) {
	s := &Scanner{
		config:    cfg,
		fetcher:   fetcher,
		extractor: pathExtractor,
		logger:    logger.With().Str("component", "Scanner").Logger(),
		status:    models.ScanStatusIdle,
	}
	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, common.NewConfigurationError("scanner_config", "base_url", "must be an absolute URL")
		}
		s.baseURL = base
	}
	return s, nil
}

// Status returns the lifecycle state of the most recent scan.
func (s *Scanner) Status() models.ScanStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Scanner) setStatus(status models.ScanStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Scan fetches each distinct seed once and returns the aggregated report.
//
// Per-resource failures are recorded in the report and never stop the scan.
// When ctx is cancelled, in-flight fetches are abandoned, unfetched seeds are
// reported as skipped and Scan returns the partial report together with
// ctx.Err().
func (s *Scanner) Scan(ctx context.Context, seeds []models.ResourceRef, pageURLs []string, onProgress ProgressFunc) (*models.ScanReport, error) {
	s.setStatus(models.ScanStatusRunning)
	defer s.setStatus(models.ScanStatusCompleted)

	startTime := time.Now()
	unique := dedupSeeds(seeds)
	state := newScanState(len(unique), onProgress)

	s.logger.Info().
		Int("seeds", len(seeds)).
		Int("unique_seeds", len(unique)).
		Int("concurrency", s.config.GetConcurrency()).
		Msg("Starting scan")

	var g errgroup.Group
	g.SetLimit(s.config.GetConcurrency())
	for _, seed := range unique {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s.fetchResource(ctx, state, seed)
			// Failures are recorded in state; returning them would stop siblings.
			return nil
		})
	}
	_ = g.Wait()

	candidates := state.candidateList()
	resources := state.resources(unique)

	analyzed := make([]string, 0, len(unique)+len(pageURLs))
	for _, seed := range unique {
		analyzed = append(analyzed, seed.String())
	}
	analyzed = append(analyzed, pageURLs...)

	report := Aggregate(AggregateInput{
		ScanID:      startTime.Format(ScanIDFormat),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Candidates:  candidates,
		Classified:  classifier.Categorize(candidates),
		URLs:        urlhandler.ParseURLs(analyzed),
		PageURLs:    dedupStrings(pageURLs),
		Resources:   resources,
		SeedCount:   len(unique),
	})

	level := zerolog.InfoLevel
	if state.errors.HasErrors() {
		level = zerolog.WarnLevel
	}
	s.logger.WithLevel(level).
		Int("fetch_errors", state.errors.Len()).
		Int("paths", report.Counts.TotalPaths).
		Int("fetched", report.Counts.FetchedResources).
		Int("failed", report.Counts.FailedResources).
		Int("skipped", report.Counts.SkippedResources).
		Dur("duration", time.Since(startTime)).
		Msg("Scan finished")

	if err := ctx.Err(); err != nil {
		s.logger.Warn().Err(err).Msg("Scan interrupted, returning partial report")
		return report, err
	}
	return report, nil
}

// fetchResource fetches one seed and records its outcome. A fetch abandoned
// because the scan context ended records nothing, so the seed stays skipped.
func (s *Scanner) fetchResource(ctx context.Context, state *scanState, seed models.ResourceRef) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	result := models.FetchResult{Source: seed}

	target, err := s.resolve(seed)
	if err != nil {
		fetchErr := common.NewFetchError(seed.String(), 0, "unresolvable resource", err)
		result.Error = fetchErr.Error()
		s.logger.Warn().Err(fetchErr).Msg("Skipping resource")
		state.record(result, nil, fetchErr)
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.GetFetchTimeout())
	defer cancel()

	content, err := s.fetcher.FetchContent(httpclient.FetchContentInput{URL: target, Context: fetchCtx})
	result.Duration = time.Since(start)
	if err != nil && ctx.Err() != nil {
		s.logger.Debug().Str("resource", seed.String()).Msg("Fetch abandoned by cancellation")
		return
	}
	if err != nil {
		fetchErr := s.classifyFetchError(fetchCtx, seed, err)
		result.StatusCode = fetchErr.StatusCode
		result.Error = fetchErr.Error()
		s.logger.Warn().Err(fetchErr).Str("resource", seed.String()).Msg("Resource fetch failed")
		state.record(result, nil, fetchErr)
		return
	}

	result.Body = string(content.Content)
	result.HasBody = true
	result.ContentType = content.ContentType
	result.StatusCode = content.HTTPStatusCode

	paths := s.extractor.Extract(target, result.Body, result.ContentType)
	s.logger.Debug().
		Str("resource", seed.String()).
		Int("status_code", result.StatusCode).
		Int("paths", len(paths)).
		Dur("duration", result.Duration).
		Msg("Resource fetched")
	state.record(result, paths, nil)
}

func (s *Scanner) classifyFetchError(fetchCtx context.Context, seed models.ResourceRef, err error) *common.FetchError {
	var httpErr *common.HTTPError
	if errors.As(err, &httpErr) {
		return common.NewFetchError(seed.String(), httpErr.StatusCode, "non-success status", err)
	}
	if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
		return common.NewFetchError(seed.String(), 0, "timed out after "+s.config.GetFetchTimeout().String(), common.ErrTimeout)
	}
	return common.NewFetchError(seed.String(), 0, "request failed", err)
}

// resolve turns a seed into a fetchable URL. Root-relative seeds need a base URL.
func (s *Scanner) resolve(seed models.ResourceRef) (string, error) {
	raw := seed.String()
	if urlhandler.IsAbsoluteURL(raw) {
		return raw, nil
	}
	if s.baseURL == nil {
		return "", common.WrapError(common.ErrInvalidInput, "relative resource without base_url")
	}
	return urlhandler.ResolveURL(raw, s.baseURL)
}

func dedupSeeds(seeds []models.ResourceRef) []models.ResourceRef {
	seen := models.NewOrderedSet()
	out := make([]models.ResourceRef, 0, len(seeds))
	for _, seed := range seeds {
		if seed == "" || !seen.Add(seed.String()) {
			continue
		}
		out = append(out, seed)
	}
	return out
}

func dedupStrings(items []string) []string {
	seen := models.NewOrderedSet()
	for _, item := range items {
		seen.Add(item)
	}
	return seen.Items()
}
