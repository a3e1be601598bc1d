package product

import "strings"

// KeywordMode selects how typed keyword input is tokenized before being
// appended to the product's keyword collection. Which mode is active is a
// product decision, both stay selectable.
type KeywordMode string

const (
	// KeywordModeWhole treats the typed string as a single keyword token.
	KeywordModeWhole KeywordMode = "whole"

	// KeywordModePrefix explodes the typed string into all of its
	// character-prefix substrings, for prefix/autocomplete search indexing
	// ("abc" -> "a", "ab", "abc").
	KeywordModePrefix KeywordMode = "prefix"
)

// SplitKeywordInput breaks comma-separated keyword entry into trimmed,
// non-empty tokens, preserving entry order.
func SplitKeywordInput(input string) []string {
	var out []string
	for _, raw := range strings.Split(input, ",") {
		if k := strings.TrimSpace(raw); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// AppendKeyword tokenizes one typed entry according to mode and appends the
// resulting tokens to the existing collection. Order is preserved and
// duplicates (including pre-existing ones) are suppressed.
func AppendKeyword(existing []string, input string, mode KeywordMode) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return existing
	}

	var tokens []string
	switch mode {
	case KeywordModePrefix:
		runes := []rune(input)
		for i := 1; i <= len(runes); i++ {
			tokens = append(tokens, string(runes[:i]))
		}
	default:
		tokens = []string{input}
	}

	return dedupeKeywords(append(existing, tokens...))
}

// dedupeKeywords keeps the first occurrence of each keyword.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
