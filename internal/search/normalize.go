package search

import (
	"regexp"
	"strings"
)

// Keep + # . as word characters so "c++", "c#" and "node.js" survive
// normalization intact.
var (
	reNonWord = regexp.MustCompile(`[^a-z0-9+#.]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a string, replaces non-word characters with spaces
// and collapses runs of whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens returns the unique word set of a normalized string.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	if normalized == "" {
		return out
	}
	for _, t := range strings.Split(normalized, " ") {
		t = strings.TrimRight(t, ".")
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// Jaccard computes |a∩b| / |a∪b| over two token sets. Two empty sets have
// no overlap signal and score 0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
