package extractor

import (
	"net/url"
	"strings"
)

var jsExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

// IsJavaScript decides whether a resource should get the AST pass, first by
// content type and then by the extension of the URL path.
func IsJavaScript(sourceURL, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "javascript") {
		return true
	}

	p := sourceURL
	if u, err := url.Parse(sourceURL); err == nil {
		p = u.Path
	}
	p = strings.ToLower(p)
	for _, ext := range jsExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}
