package match

import (
	"strings"
	"unicode"
)

// NormalizeHeader normalizes a header for fuzzy matching.
// The normalization pipeline:
// 1. Split CamelCase and separators into tokens.
// 2. Case-fold to lower.
// 3. Join without separators.
func NormalizeHeader(s string) string {
	return strings.Join(TokenizeHeader(s), "")
}

// TokenizeHeader splits a header into normalized lowercase tokens.
// Examples:
//   - "StudentNumber" -> ["student", "number"]
//   - "E-mail address" -> ["e", "mail", "address"]
//   - "Preference Titration" -> ["preference", "titration"]
func TokenizeHeader(s string) []string {
	tokens := tokenizeCamelCase(strings.TrimSpace(s))
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or separated string into tokens.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator covers whitespace (including non-breaking space) and the
// punctuation form builders put into column titles.
func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}

	switch r {
	case '_', '-', '.', ':', '#', '(', ')', '/':
		return true
	}

	return false
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "studentNumber" -> split before 'N'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "IDNumber" -> "ID" + "Number"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	// "Preference1" -> "Preference" + "1"
	if unicode.IsDigit(r) != unicode.IsDigit(prevRune) {
		return true
	}

	return false
}
