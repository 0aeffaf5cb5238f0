package scanner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/extractor"
	"github.com/aleister1102/pathscan/internal/httpclient"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T, cfg config.ScannerConfig) *Scanner {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(5 * time.Second).Build()
	require.NoError(t, err)
	pe, err := extractor.NewPathExtractor(config.NewDefaultExtractorConfig(), zerolog.Nop())
	require.NoError(t, err)
	s, err := New(cfg, client, pe, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestScan_DeduplicatesSeeds(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprint(w, `fetch("/api/v1/users"); load('/static/app.css'); x = "/about";`)
	}))
	defer srv.Close()

	s := newTestScanner(t, config.NewDefaultScannerConfig())
	seed := models.ResourceRef(srv.URL + "/app.js")

	report, err := s.Scan(context.Background(), []models.ResourceRef{seed, seed, seed}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, []string{"/api/v1/users", "/static/app.css", "/about"}, report.Paths)
	assert.Equal(t, []string{"/static/app.css"}, report.StaticPaths)
	assert.Equal(t, []string{"/api/v1/users"}, report.APIPaths)
	assert.Equal(t, []string{"/about"}, report.OtherPaths)
	assert.Equal(t, 1, report.Counts.Resources)
	assert.Equal(t, 1, report.Counts.FetchedResources)
	require.Len(t, report.Resources, 1)
	assert.Equal(t, 3, report.Resources[0].PathsFound)
	assert.Equal(t, models.ScanStatusCompleted, s.Status())
}

func TestScan_FailuresDoNotStopOthers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.js", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"/ok/path"`)
	})
	mux.HandleFunc("/missing.js", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestScanner(t, config.ScannerConfig{Concurrency: 2})
	seeds := []models.ResourceRef{
		models.ResourceRef(srv.URL + "/missing.js"),
		"/relative-without-base.js",
		models.ResourceRef(srv.URL + "/ok.js"),
	}

	failedEvents := 0
	report, err := s.Scan(context.Background(), seeds, nil, func(e models.ProgressEvent) {
		if e.Failed {
			failedEvents++
		}
	})
	require.NoError(t, err)

	assert.Equal(t, 2, failedEvents)
	assert.Equal(t, []string{"/ok/path"}, report.Paths)
	assert.Equal(t, 2, report.Counts.FailedResources)
	assert.Equal(t, 1, report.Counts.FetchedResources)
	require.Len(t, report.Resources, 3)
	assert.Equal(t, models.ResourceFailed, report.Resources[0].State)
	assert.Equal(t, http.StatusNotFound, report.Resources[0].StatusCode)
	assert.Contains(t, report.Resources[0].Error, "HTTP 404")
	assert.Equal(t, models.ResourceFailed, report.Resources[1].State)
	assert.Equal(t, models.ResourceFetched, report.Resources[2].State)
}

func TestScan_ResolvesRootRelativeSeedsAgainstBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/js/main.js", r.URL.Path)
		fmt.Fprint(w, `'./chunk.js'`)
	}))
	defer srv.Close()

	s := newTestScanner(t, config.ScannerConfig{BaseURL: srv.URL})
	report, err := s.Scan(context.Background(), []models.ResourceRef{"/js/main.js"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"./chunk.js"}, report.Paths)
	require.Len(t, report.Resources, 1)
	assert.Equal(t, models.ResourceRef("/js/main.js"), report.Resources[0].Source)
}

func TestScan_ProgressIsMonotonicUnderConcurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		fmt.Fprintf(w, `"%s/x"`, r.URL.Path)
	}))
	defer srv.Close()

	var seeds []models.ResourceRef
	for i := 0; i < 20; i++ {
		seeds = append(seeds, models.ResourceRef(fmt.Sprintf("%s/r%d.js", srv.URL, i)))
	}

	var mu sync.Mutex
	var events []models.ProgressEvent
	s := newTestScanner(t, config.ScannerConfig{Concurrency: 8})
	report, err := s.Scan(context.Background(), seeds, nil, func(e models.ProgressEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})
	require.NoError(t, err)

	require.Len(t, events, 20)
	for i, e := range events {
		assert.Equal(t, i+1, e.Completed)
		assert.Equal(t, 20, e.Total)
	}
	assert.Equal(t, 20, report.Counts.TotalPaths)
}

func TestScan_TimeoutRecordedAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer srv.Close()

	s := newTestScanner(t, config.ScannerConfig{FetchTimeoutSecs: 1})
	report, err := s.Scan(context.Background(), []models.ResourceRef{models.ResourceRef(srv.URL + "/slow.js")}, nil, nil)
	require.NoError(t, err)

	require.Len(t, report.Resources, 1)
	assert.Equal(t, models.ResourceFailed, report.Resources[0].State)
	assert.Contains(t, report.Resources[0].Error, "timed out")
}

func TestScan_CancellationKeepsPartialResults(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/fast.js", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"/fast/found"`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	seeds := []models.ResourceRef{
		models.ResourceRef(srv.URL + "/fast.js"),
		models.ResourceRef(srv.URL + "/hang.js"),
		models.ResourceRef(srv.URL + "/never.js"),
	}

	s := newTestScanner(t, config.NewDefaultScannerConfig())
	report, err := s.Scan(ctx, seeds, nil, func(e models.ProgressEvent) {
		if e.Completed == 1 {
			go func() {
				time.Sleep(50 * time.Millisecond)
				cancel()
			}()
		}
	})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, []string{"/fast/found"}, report.Paths)
	require.Len(t, report.Resources, 3)
	assert.Equal(t, models.ResourceFetched, report.Resources[0].State)
	assert.Equal(t, models.ResourceSkipped, report.Resources[1].State)
	assert.Equal(t, models.ResourceSkipped, report.Resources[2].State)
	assert.Equal(t, 2, report.Counts.SkippedResources)
}

func TestScan_URLAnalysisCoversSeedsAndPageURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "")
	}))
	defer srv.Close()

	s := newTestScanner(t, config.NewDefaultScannerConfig())
	pageURLs := []string{"https://Example.com/search?q=a+b&lang=en", "https://example.com/", "not a url"}
	report, err := s.Scan(context.Background(), []models.ResourceRef{models.ResourceRef(srv.URL + "/empty.js")}, pageURLs, nil)
	require.NoError(t, err)

	assert.Contains(t, report.URLPaths, "/empty.js")
	assert.Contains(t, report.URLPaths, "/search")
	assert.Equal(t, []string{"q=a b", "lang=en"}, report.URLParams)
	assert.Contains(t, report.URLDomains, "example.com")
	assert.Equal(t, pageURLs, report.PageURLs)
	assert.Empty(t, report.Paths)
	assert.NotNil(t, report.Paths)
	assert.Equal(t, models.ResourceFetched, report.Resources[0].State)
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	pe, err := extractor.NewPathExtractor(config.NewDefaultExtractorConfig(), zerolog.Nop())
	require.NoError(t, err)
	_, err = New(config.ScannerConfig{BaseURL: "/app"}, nil, pe, zerolog.Nop())
	assert.Error(t, err)
}
