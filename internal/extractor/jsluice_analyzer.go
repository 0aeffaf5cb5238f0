package extractor

import (
	"github.com/BishopFox/jsluice"
	"github.com/rs/zerolog"
)

// JSluiceAnalyzer finds URL-ish strings through a JavaScript syntax tree.
// It catches paths built by concatenation or passed to fetch/XHR that the
// quoted-literal scan misses.
type JSluiceAnalyzer struct {
	logger zerolog.Logger
}

// NewJSluiceAnalyzer creates a new jsluice analyzer
func NewJSluiceAnalyzer(logger zerolog.Logger) *JSluiceAnalyzer {
	return &JSluiceAnalyzer{
		logger: logger.With().Str("component", "JSluiceAnalyzer").Logger(),
	}
}

// Analyze returns the jsluice URLs of content that pass IsValidPath.
func (jsa *JSluiceAnalyzer) Analyze(sourceURL string, content []byte) []string {
	analyzer := jsluice.NewAnalyzer(content)
	results := analyzer.GetURLs()

	paths := make([]string, 0, len(results))
	for _, res := range results {
		if res == nil || !IsValidPath(res.URL) {
			continue
		}
		paths = append(paths, res.URL)
	}

	jsa.logger.Debug().
		Str("source_url", sourceURL).
		Int("jsluice_url_count", len(results)).
		Int("valid_path_count", len(paths)).
		Msg("Jsluice analysis completed")

	return paths
}
