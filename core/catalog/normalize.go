// Package catalog - Label normalization
package catalog

import (
	"strings"
	"unicode"
)

// qualifier tokens carry no item information and are stripped before matching
var qualifiers = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// NormalizeLabel canonicalizes a free-text item label: lowercase, separators
// collapsed to single spaces, punctuation removed, qualifiers stripped and
// plural tokens reduced.
func NormalizeLabel(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if qualifiers[token] {
			continue
		}
		tokens = append(tokens, singularize(token))
	}
	return strings.Join(tokens, " ")
}

// SortedTokens returns the normalized label with its tokens in sorted order,
// so word-order variants ("piano grand" vs "grand piano") compare equal.
func SortedTokens(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) < 2 {
		return normalized
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return strings.Join(sorted, " ")
}

func singularize(token string) string {
	if len(token) <= 3 {
		return token
	}
	switch {
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ss"):
		return token
	case strings.HasSuffix(token, "es") && (strings.HasSuffix(token, "xes") || strings.HasSuffix(token, "ses")):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}
	return token
}
