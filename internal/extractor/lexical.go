package extractor

import "regexp"

// quotedPathRegex matches a single- or double-quoted string starting with
// "/", "./" or "../". The body runs to the next quote of either kind, so
// mismatched quotes are accepted on purpose.
var quotedPathRegex = regexp.MustCompile(`['"]((?:/|\.\./|\./)[^'"]+)['"]`)

// ExtractPaths returns every quoted path-like literal in content that passes
// IsValidPath, in order of appearance. Duplicates are kept.
func ExtractPaths(content string) []string {
	if content == "" {
		return []string{}
	}

	matches := quotedPathRegex.FindAllStringSubmatch(content, -1)
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if IsValidPath(m[1]) {
			paths = append(paths, m[1])
		}
	}
	return paths
}

// extractWithRegexes applies extra patterns to content. A pattern with a
// capture group contributes its first group, otherwise the whole match.
func extractWithRegexes(content string, regexes []*regexp.Regexp) []string {
	var paths []string
	for _, re := range regexes {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			candidate := m[0]
			if len(m) > 1 && m[1] != "" {
				candidate = m[1]
			}
			if IsValidPath(candidate) {
				paths = append(paths, candidate)
			}
		}
	}
	return paths
}
