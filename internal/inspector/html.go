package inspector

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/aleister1102/pathscan/internal/urlhandler"
)

// resourceAttrs maps tags that make the browser load something to the
// attribute holding the URL.
var resourceAttrs = []struct {
	selector string
	attr     string
}{
	{"script[src]", "src"},
	{"link[href]", "href"},
	{"img[src]", "src"},
	{"iframe[src]", "src"},
	{"source[src]", "src"},
	{"video[src]", "src"},
	{"audio[src]", "src"},
	{"embed[src]", "src"},
}

// loadingRels are link relations that cause a fetch.
var loadingRels = []string{"stylesheet", "icon", "preload", "modulepreload", "prefetch", "manifest"}

var skipPrefixes = []string{"data:", "mailto:", "tel:", "javascript:", "blob:", "about:"}

func parseDocument(html []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML content")
	}
	return doc, nil
}

// ExtractPageURLs lists the URLs a page references, in document order:
// the page itself, absolute or root-relative links, script, stylesheet and
// image sources as written, and form actions resolved against the origin.
func ExtractPageURLs(html []byte, pageURL string) ([]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	var origin *url.URL
	if o, err := urlhandler.Origin(pageURL); err == nil {
		origin, _ = url.Parse(o)
	}
	resolve := func(ref string) (string, bool) {
		if origin == nil {
			return "", false
		}
		resolved, err := origin.Parse(ref)
		if err != nil {
			return "", false
		}
		return resolved.String(), true
	}

	urls := models.NewOrderedSet()
	urls.Add(pageURL)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		switch {
		case strings.HasPrefix(href, "http"):
			urls.Add(href)
		case strings.HasPrefix(href, "/"):
			if full, ok := resolve(href); ok {
				urls.Add(full)
			}
		}
	})
	for _, sel := range []struct{ selector, attr string }{
		{"script[src]", "src"},
		{"link[href]", "href"},
		{"img[src]", "src"},
	} {
		doc.Find(sel.selector).Each(func(_ int, s *goquery.Selection) {
			if v := s.AttrOr(sel.attr, ""); v != "" {
				urls.Add(v)
			}
		})
	}
	doc.Find("form[action]").Each(func(_ int, s *goquery.Selection) {
		if action := s.AttrOr("action", ""); action != "" {
			if full, ok := resolve(action); ok {
				urls.Add(full)
			}
		}
	})

	return urls.Items(), nil
}

// ExtractResourceURLs lists the http(s) resources the document would load,
// resolved against pageURL and deduplicated in document order.
func ExtractResourceURLs(html []byte, pageURL string) ([]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, common.WrapError(err, "invalid page URL")
	}
	if b, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if resolved, err := base.Parse(b); err == nil {
			base = resolved
		}
	}

	resources := models.NewOrderedSet()
	add := func(raw string) {
		if resolved, ok := resolveResource(raw, base); ok {
			resources.Add(resolved)
		}
	}

	for _, ra := range resourceAttrs {
		doc.Find(ra.selector).Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) == "link" && !isLoadingLink(s.AttrOr("rel", "")) {
				return
			}
			add(s.AttrOr(ra.attr, ""))
		})
	}
	doc.Find("img[srcset], source[srcset]").Each(func(_ int, s *goquery.Selection) {
		for _, candidate := range parseSrcset(s.AttrOr("srcset", "")) {
			add(candidate)
		}
	})

	return resources.Items(), nil
}

func resolveResource(raw string, base *url.URL) (string, bool) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", false
	}
	lower := strings.ToLower(ref)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return "", false
		}
	}
	resolved, err := urlhandler.ResolveURL(ref, base)
	if err != nil {
		return "", false
	}
	u, err := url.Parse(resolved)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	u.Fragment = ""
	return u.String(), true
}

func isLoadingLink(rel string) bool {
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		for _, r := range loadingRels {
			if token == r {
				return true
			}
		}
	}
	return false
}

// parseSrcset returns the URL of each comma separated srcset candidate.
func parseSrcset(srcset string) []string {
	var urls []string
	for _, part := range strings.Split(srcset, ",") {
		if fields := strings.Fields(part); len(fields) > 0 {
			urls = append(urls, fields[0])
		}
	}
	return urls
}
