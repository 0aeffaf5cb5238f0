package urlhandler

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "example.com", want: "http://example.com"},
		{input: " https://EXAMPLE.com/a#frag ", want: "https://example.com/a"},
		{input: "https://example.com/p?q=1", want: "https://example.com/p?q=1"},
		{input: "", wantErr: true},
		{input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://example.com/app/index.html")
	require.NoError(t, err)

	got, err := ResolveURL("/static/app.js", base)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/static/app.js", got)

	got, err = ResolveURL("../img/a.png", base)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/img/a.png", got)

	_, err = ResolveURL("/relative", nil)
	assert.Error(t, err)

	_, err = ResolveURL("  ", base)
	assert.Error(t, err)
}

func TestOrigin(t *testing.T) {
	got, err := Origin("https://example.com:8443/a/b?c=d")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8443", got)

	_, err = Origin("/only/path")
	assert.Error(t, err)
}

func TestReadLinesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seeds.txt")
	content := "https://example.com/app.js\n\n# comment\n  /static/main.js  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := ReadLinesFromFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/app.js", "/static/main.js"}, lines)
}

func TestReadLinesFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadLinesFromFile(filepath.Join(dir, "missing.txt"), zerolog.Nop())
	assert.True(t, errors.Is(err, ErrFileNotFound))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n# only comments\n"), 0o644))
	_, err = ReadLinesFromFile(empty, zerolog.Nop())
	assert.True(t, errors.Is(err, ErrFileEmpty))

	_, err = ReadLinesFromFile(dir, zerolog.Nop())
	assert.Error(t, err)
}
