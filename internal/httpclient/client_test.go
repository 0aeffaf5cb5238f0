package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, b *HTTPClientBuilder) *HTTPClient {
	t.Helper()
	client, err := b.Build()
	require.NoError(t, err)
	return client
}

func TestFetchContent_JavaScript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "pathscan-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "*/*", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/javascript")
		_, _ = w.Write([]byte(`fetch("/api/v1/users")`))
	}))
	defer server.Close()

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithUserAgent("pathscan-test"))

	result, err := client.FetchContent(FetchContentInput{URL: server.URL + "/app.js"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.HTTPStatusCode)
	assert.Equal(t, `fetch("/api/v1/users")`, string(result.Content))
	assert.Equal(t, "application/javascript", result.ContentType)
	assert.Equal(t, server.URL+"/app.js", result.FinalURL)
	assert.False(t, result.Truncated)
}

func TestFetchContent_HeadersOverrideDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		assert.Equal(t, "text/css", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).
		WithHeaders(map[string]string{"Cookie": "session=abc", "Accept": "text/css"}))

	result, err := client.FetchContent(FetchContentInput{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, result.HTTPStatusCode)
	assert.Empty(t, result.Content)
}

func TestFetchContent_Redirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/old.js":
			http.Redirect(w, r, "/new.js", http.StatusFound)
		case "/new.js":
			fmt.Fprint(w, "ok")
		}
	}))
	defer server.Close()

	follow := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithRedirects(true, 5))
	result, err := follow.FetchContent(FetchContentInput{URL: server.URL + "/old.js"})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(result.Content))
	assert.Equal(t, server.URL+"/new.js", result.FinalURL)

	noFollow := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithRedirects(false, 0))
	result, err = noFollow.FetchContent(FetchContentInput{URL: server.URL + "/old.js"})
	require.Error(t, err)
	assert.Equal(t, http.StatusFound, result.HTTPStatusCode)
}

func TestFetchContent_RedirectLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithRedirects(true, 2))
	_, err := client.FetchContent(FetchContentInput{URL: server.URL + "/a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 2 redirects")
}

func TestFetchContent_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("x", 2*errorBodyPreview), http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()))

	result, err := client.FetchContent(FetchContentInput{URL: server.URL + "/missing.js"})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.HTTPStatusCode)
	assert.Empty(t, result.Content)

	var httpErr *common.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Len(t, httpErr.Message, errorBodyPreview)
}

func TestFetchContent_MaxBodyBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is some very long content"))
	}))
	defer server.Close()

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithMaxBodyBytes(10))
	result, err := client.FetchContent(FetchContentInput{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, "this is so", string(result.Content))
	assert.True(t, result.Truncated)

	exact := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()).WithMaxBodyBytes(30))
	result, err = exact.FetchContent(FetchContentInput{URL: server.URL})
	require.NoError(t, err)
	assert.False(t, result.Truncated)
}

func TestFetchContent_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(t, NewHTTPClientBuilder(zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, err := client.FetchContent(FetchContentInput{URL: server.URL, Context: ctx})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var netErr *common.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestNewHTTPClient_InvalidProxy(t *testing.T) {
	_, err := NewHTTPClientBuilder(zerolog.Nop()).WithProxy("://bad").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse proxy URL")
}

func TestRedirectPolicy(t *testing.T) {
	assert.Nil(t, redirectPolicy(Options{FollowRedirects: true}))

	stop := redirectPolicy(Options{FollowRedirects: false})
	require.NotNil(t, stop)
	assert.ErrorIs(t, stop(nil, nil), http.ErrUseLastResponse)

	limited := redirectPolicy(Options{FollowRedirects: true, MaxRedirects: 1})
	assert.NoError(t, limited(nil, nil))
	assert.Error(t, limited(nil, make([]*http.Request, 1)))
}
