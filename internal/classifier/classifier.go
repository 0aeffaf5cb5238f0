// Package classifier assigns candidate paths to static, api or other buckets.
package classifier

import (
	"regexp"
	"strings"

	"github.com/aleister1102/pathscan/internal/models"
)

// staticExtensions are matched anywhere in the lowercased path, not only as a
// suffix, so "/app.js?v=2" and "/file.json.bak" are both static.
var staticExtensions = []string{
	".js", ".css", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico",
	".woff", ".woff2", ".ttf", ".eot", ".pdf", ".txt", ".json", ".xml",
	".zip", ".rar", ".7z", ".tar", ".gz",
}

var apiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/[^/]+/[^/]+/?$`),
	regexp.MustCompile(`/[^/]+/[^/]+/[^/]+`),
	regexp.MustCompile(`(?i)/[^/]+/[^/]+\.(json|xml|html?)$`),
}

// Classify returns the category of a single path. The static check runs
// before the api patterns, so "/images/photo.jpg" is static.
func Classify(path string) models.Category {
	if IsStatic(path) {
		return models.CategoryStatic
	}
	if IsAPI(path) {
		return models.CategoryAPI
	}
	return models.CategoryOther
}

// IsStatic reports whether path contains a known static file extension.
func IsStatic(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range staticExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// IsAPI reports whether path has the multi-segment shape of an endpoint.
func IsAPI(path string) bool {
	for _, re := range apiPatterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Categorize partitions paths into buckets. Every input lands in exactly one
// bucket and relative order is kept within each bucket.
func Categorize(paths []string) models.CategorizedPaths {
	out := models.CategorizedPaths{
		Static: []string{},
		API:    []string{},
		Other:  []string{},
	}
	for _, p := range paths {
		switch Classify(p) {
		case models.CategoryStatic:
			out.Static = append(out.Static, p)
		case models.CategoryAPI:
			out.API = append(out.API, p)
		default:
			out.Other = append(out.Other, p)
		}
	}
	return out
}
