// Package dedup detects URLs of a batch that point to the same path once
// trailing slashes, repeated slashes, query strings and case are ignored.
package dedup

import (
	"regexp"
	"strings"

	"vitrine-url-api/internal/model"
)

var (
	repeatedSlashRegex = regexp.MustCompile(`/{2,}`)
	queryRegex         = regexp.MustCompile(`(?s)[?&].*$`)
)

// Normalize returns the comparison key of a URL
func Normalize(url string) string {
	s := strings.ToLower(url)
	s = strings.TrimSuffix(s, "/")
	s = repeatedSlashRegex.ReplaceAllString(s, "/")
	return queryRegex.ReplaceAllString(s, "")
}

// Check reports, for every input URL, the other URLs of the batch with the
// same normalized form. Output order follows the input; original casing is
// preserved.
func Check(urls []string) []model.DuplicateCheckResult {
	groups := make(map[string][]int, len(urls))
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = Normalize(u)
		groups[keys[i]] = append(groups[keys[i]], i)
	}

	results := make([]model.DuplicateCheckResult, len(urls))
	for i, u := range urls {
		group := groups[keys[i]]
		duplicates := make([]string, 0, len(group)-1)
		for _, j := range group {
			if j != i {
				duplicates = append(duplicates, urls[j])
			}
		}
		results[i] = model.DuplicateCheckResult{
			URL:         u,
			IsDuplicate: len(group) > 1,
			Duplicates:  duplicates,
		}
	}
	return results
}

// CountDuplicates is the number of results flagged as duplicate
func CountDuplicates(results []model.DuplicateCheckResult) int {
	n := 0
	for _, r := range results {
		if r.IsDuplicate {
			n++
		}
	}
	return n
}
