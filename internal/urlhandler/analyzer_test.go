package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURLs(t *testing.T) {
	got := ParseURLs([]string{
		"https://example.com/app.js?v=1&v=2",
		"https://Example.com/",
		"https://api.example.com/v1/users?id=7&q=a+b",
		"https://example.com/app.js?v=1",
	})

	assert.Equal(t, []string{"/app.js", "/v1/users"}, got.Paths)
	assert.Equal(t, []string{"v=1", "v=2", "id=7", "q=a b"}, got.Params)
	assert.Equal(t, []string{"example.com", "api.example.com"}, got.Domains)
}

func TestParseURLs_SkipsRelativeAndMalformed(t *testing.T) {
	got := ParseURLs([]string{
		"/static/app.js",
		"./relative",
		"not a url",
		"http://[::1",
		"mailto:someone@example.com",
		"",
	})

	assert.Empty(t, got.Paths)
	assert.Empty(t, got.Params)
	assert.Empty(t, got.Domains)
	assert.NotNil(t, got.Paths)
}

func TestParseURLs_RootPathOnlyAddsDomain(t *testing.T) {
	got := ParseURLs([]string{"https://example.com", "https://example.com/"})
	assert.Empty(t, got.Paths)
	assert.Equal(t, []string{"example.com"}, got.Domains)
}

func TestParseURLs_QueryDecoding(t *testing.T) {
	got := ParseURLs([]string{"https://example.com/s?name=J%C3%BCrgen&flag&&empty=&redirect=%2Fhome"})
	assert.Equal(t, []string{"name=Jürgen", "flag=", "empty=", "redirect=/home"}, got.Params)
}

func TestParseURLs_PortIsNotPartOfDomain(t *testing.T) {
	got := ParseURLs([]string{"http://localhost:8080/admin/panel"})
	assert.Equal(t, []string{"localhost"}, got.Domains)
	assert.Equal(t, []string{"/admin/panel"}, got.Paths)
}
