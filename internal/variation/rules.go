package variation

import (
	"regexp"
	"strings"

	"vitrine-url-api/internal/slug"
)

// Rule names one text transformation of a SyntaxText config
type Rule string

const (
	RuleLowercase             Rule = "lowercase"
	RuleReplaceSpaces         Rule = "replace-spaces-with-hyphens"
	RuleRemoveSpecialChars    Rule = "remove-special-chars"
	RuleRemoveAccents         Rule = "remove-accents"
	RuleAddLocationSuffix     Rule = "add-location-suffix"
	RuleAddNeighborhoodSuffix Rule = "add-neighborhood-suffix"
)

var (
	spacesRegex  = regexp.MustCompile(`[` + slug.Whitespace + `]+`)
	specialRegex = regexp.MustCompile(`[^a-zA-Z0-9/\-]`)
)

// Valid reports whether r is a known rule
func (r Rule) Valid() bool {
	switch r {
	case RuleLowercase, RuleReplaceSpaces, RuleRemoveSpecialChars,
		RuleRemoveAccents, RuleAddLocationSuffix, RuleAddNeighborhoodSuffix:
		return true
	}
	return false
}

// Location carries the slugs the suffix rules append
type Location struct {
	CitySlug         string
	StateSlug        string
	NeighborhoodSlug string
}

// Apply runs a single rule over a rendered URL. Unknown rules return the
// input unchanged.
func Apply(rule Rule, input string, loc Location) string {
	switch rule {
	case RuleLowercase:
		return strings.ToLower(input)
	case RuleReplaceSpaces:
		return spacesRegex.ReplaceAllString(input, "-")
	case RuleRemoveSpecialChars:
		return specialRegex.ReplaceAllString(input, "")
	case RuleRemoveAccents:
		return slug.RemoveAccents(input)
	case RuleAddLocationSuffix:
		if loc.CitySlug == "" || loc.StateSlug == "" {
			return input
		}
		return appendSuffix(input, loc.CitySlug+"-"+loc.StateSlug)
	case RuleAddNeighborhoodSuffix:
		if loc.NeighborhoodSlug == "" {
			return input
		}
		return appendSuffix(input, loc.NeighborhoodSlug)
	default:
		return input
	}
}

// ApplyAll runs rules in order
func ApplyAll(rules []Rule, input string, loc Location) string {
	out := input
	for _, r := range rules {
		out = Apply(r, out, loc)
	}
	return out
}

// appendSuffix adds -suffix to the last segment unless the URL already
// carries it
func appendSuffix(input, suffix string) string {
	if strings.Contains(input, suffix) {
		return input
	}
	return strings.TrimRight(input, "/") + "-" + suffix
}
