package slug

import (
	"regexp"
	"strings"
)

// nonSlugChars matches every character that is not a word character or
// a hyphen.
var nonSlugChars = regexp.MustCompile(`[^\w-]+`)

// Derive builds a URL-safe slug from a post title: lowercase, spaces
// become hyphens, everything that is not a word character or hyphen is
// stripped. The derivation is deterministic and idempotent.
func Derive(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")

	return nonSlugChars.ReplaceAllString(s, "")
}
