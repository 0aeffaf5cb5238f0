package urlhandler

import (
	"net/url"
	"strings"

	"github.com/aleister1102/pathscan/internal/models"
)

// ParseURLs breaks each absolute URL into hostname, path and query pairs.
// Strings without both a scheme and a host are skipped silently. A bare "/"
// path is not recorded. Every query value yields its own "key=value" entry.
func ParseURLs(urls []string) models.ParsedURLSet {
	paths := models.NewOrderedSet()
	params := models.NewOrderedSet()
	domains := models.NewOrderedSet()

	for _, raw := range urls {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}

		if host := strings.ToLower(u.Hostname()); host != "" {
			domains.Add(host)
		}

		if p := u.EscapedPath(); p != "" && p != "/" {
			paths.Add(p)
		}

		for _, pair := range queryPairs(u.RawQuery) {
			params.Add(pair)
		}
	}

	return models.ParsedURLSet{
		Paths:   paths.Items(),
		Params:  params.Items(),
		Domains: domains.Items(),
	}
}

// queryPairs decodes a raw query into "key=value" strings in source order.
// Only "&" separates pairs and "+" decodes to a space, as in form encoding.
// url.ParseQuery is not used because it returns an unordered map and
// rejects ";" separated input.
func queryPairs(rawQuery string) []string {
	if rawQuery == "" {
		return nil
	}

	var pairs []string
	for _, piece := range strings.Split(rawQuery, "&") {
		if piece == "" {
			continue
		}
		key, value, _ := strings.Cut(piece, "=")
		pairs = append(pairs, formDecode(key)+"="+formDecode(value))
	}
	return pairs
}

func formDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		// Malformed escapes are kept literally.
		return strings.ReplaceAll(s, "+", " ")
	}
	return decoded
}
