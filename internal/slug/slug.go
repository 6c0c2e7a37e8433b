// Package slug derives kebab-case identifiers from free-form names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var markup = regexp.MustCompile(`<[^>]*>`)

// Kebab converts a string into a kebab-case identifier made of ASCII
// lowercase letters, digits and single dashes, starting with a letter.
// It drops tag-like markup, NFD-normalizes and strips combining marks,
// splits camelCase words, turns whitespace, underscores and dots into
// dashes, removes everything else and collapses consecutive dashes.
// The result is empty when nothing usable remains.
func Kebab(s string) string {
	s = markup.ReplaceAllString(s, "")

	// NFD normalize to decompose characters.
	s = norm.NFD.String(s)

	var b strings.Builder
	var prev rune
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r), r == '_', r == '.', r == '-':
			b.WriteRune('-')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		}
		prev = r
	}

	out := b.String()
	var kept strings.Builder
	for _, r := range out {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			kept.WriteRune(r)
		}
	}
	out = kept.String()

	// Collapse consecutive dashes.
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}

	// A kebab-case name starts with a letter.
	out = strings.TrimLeft(out, "-0123456789")
	out = strings.TrimRight(out, "-")

	return out
}
