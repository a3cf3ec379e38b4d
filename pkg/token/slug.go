package token

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-{2,}`)
	slugUnders     = regexp.MustCompile(`_{2,}`)
)

// Slugify converts a display name into a URL/CSS-safe token: lower-case,
// characters outside [a-z0-9-_], whitespace runs collapsed to a single
// hyphen, repeated hyphen/underscore runs collapsed, and leading/trailing
// separators trimmed. Deterministic and total; an empty name yields an
// empty token. Uniqueness is not enforced, so distinct display names may
// produce the same token.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugUnders.ReplaceAllString(s, "_")
	return strings.Trim(s, "-_")
}
