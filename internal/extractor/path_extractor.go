package extractor

import (
	"regexp"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/rs/zerolog"
)

// PathExtractor turns a fetched body into candidate paths. The quoted-literal
// scan always runs; custom regexes and the jsluice pass are layered on top
// and the denylist is applied last.
type PathExtractor struct {
	logger         zerolog.Logger
	maxContentSize int
	customRegexes  []*regexp.Regexp
	denylist       []*regexp.Regexp
	jsluice        *JSluiceAnalyzer
}

// NewPathExtractor creates a PathExtractor. An invalid custom or denylist
// pattern is a configuration error.
func NewPathExtractor(cfg config.ExtractorConfig, logger zerolog.Logger) (*PathExtractor, error) {
	pe := &PathExtractor{
		logger:         logger.With().Str("component", "PathExtractor").Logger(),
		maxContentSize: cfg.MaxContentSize,
	}

	var err error
	if pe.customRegexes, err = compilePatterns("custom_regexes", cfg.CustomRegexes); err != nil {
		return nil, err
	}
	if pe.denylist, err = compilePatterns("denylist", cfg.Denylist); err != nil {
		return nil, err
	}
	if cfg.EnableJSluice {
		pe.jsluice = NewJSluiceAnalyzer(logger)
	}

	pe.logger.Debug().
		Int("custom_regexes", len(pe.customRegexes)).
		Int("denylist", len(pe.denylist)).
		Bool("jsluice", pe.jsluice != nil).
		Int("max_content_size", pe.maxContentSize).
		Msg("PathExtractor initialized")

	return pe, nil
}

func compilePatterns(field string, patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, common.WrapError(
				common.NewConfigurationError("extractor_config", field, err.Error()),
				"failed to compile pattern "+pattern,
			)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Extract returns the candidate paths found in body, in discovery order.
// Duplicates are kept; callers deduplicate across resources.
func (pe *PathExtractor) Extract(sourceURL, body, contentType string) []string {
	if pe.maxContentSize > 0 && len(body) > pe.maxContentSize {
		pe.logger.Debug().
			Str("source_url", sourceURL).
			Int("content_size", len(body)).
			Int("max_content_size", pe.maxContentSize).
			Msg("Body exceeds max content size, truncating before extraction")
		body = body[:pe.maxContentSize]
	}

	paths := ExtractPaths(body)
	if len(pe.customRegexes) > 0 {
		paths = append(paths, extractWithRegexes(body, pe.customRegexes)...)
	}
	if pe.jsluice != nil && IsJavaScript(sourceURL, contentType) {
		paths = append(paths, pe.jsluice.Analyze(sourceURL, []byte(body))...)
	}

	if len(pe.denylist) > 0 {
		paths = pe.applyDenylist(paths)
	}

	pe.logger.Debug().Str("source_url", sourceURL).Int("path_count", len(paths)).Msg("Finished extracting paths")
	return paths
}

func (pe *PathExtractor) applyDenylist(paths []string) []string {
	kept := paths[:0]
	for _, p := range paths {
		denied := false
		for _, re := range pe.denylist {
			if re.MatchString(p) {
				denied = true
				break
			}
		}
		if !denied {
			kept = append(kept, p)
		}
	}
	return kept
}
