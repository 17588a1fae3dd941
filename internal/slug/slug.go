package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Whitespace matches ASCII and Unicode spaces, including the no-break space,
// vertical tab and BOM that \s alone misses
const Whitespace = `\s\p{Z}\x{000B}\x{FEFF}`

var (
	// Anything outside [a-z0-9], whitespace and hyphen is dropped
	disallowedRegex = regexp.MustCompile(`[^a-z0-9` + Whitespace + `-]`)
	whitespaceRegex = regexp.MustCompile(`[` + Whitespace + `]+`)
	hyphenRegex     = regexp.MustCompile(`-+`)
)

// Make converts free text into a URL slug ("São Paulo" -> "sao-paulo")
func Make(text string) string {
	s := strings.ToLower(text)

	// Remove accents
	s = RemoveAccents(s)

	s = disallowedRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, "-")
	s = hyphenRegex.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// Simple lowercases and turns whitespace runs into hyphens. Accents and
// punctuation are kept.
func Simple(text string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(text), "-")
}

// RemoveAccents strips combining marks after NFD decomposition
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
