package extractor

import "strings"

const (
	minPathLength = 1
	maxPathLength = 200
)

// IsValidPath reports whether s looks like a same-origin path worth keeping.
// Protocol-relative and absolute URLs are rejected, as are strings with spaces
// or bytes outside printable ASCII. Length must be strictly between 1 and 200.
func IsValidPath(s string) bool {
	if strings.HasPrefix(s, "//") || strings.Contains(s, "://") {
		return false
	}
	if !strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "./") && !strings.HasPrefix(s, "../") {
		return false
	}
	if strings.Contains(s, " ") {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return len(s) > minPathLength && len(s) < maxPathLength
}
