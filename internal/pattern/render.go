package pattern

import "regexp"

var placeholderRegex = regexp.MustCompile(`\{([^{}/]+)\}`)

// Render substitutes {key} tokens of pattern with values from variables.
//
// Tokens without a matching key are left untouched. Substitution is a single
// pass over the pattern: a value that itself contains a {token} is copied
// verbatim and never expanded.
func Render(pattern string, variables map[string]string) string {
	if len(variables) == 0 {
		return pattern
	}

	return placeholderRegex.ReplaceAllStringFunc(pattern, func(token string) string {
		if value, ok := variables[token[1:len(token)-1]]; ok {
			return value
		}
		return token
	})
}

// Placeholders lists the distinct placeholder names of pattern in order of
// first appearance
func Placeholders(pattern string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(pattern, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// Unresolved reports the placeholders still present in a rendered URL
func Unresolved(rendered string) []string {
	return Placeholders(rendered)
}
