package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSeedLength is the minimum seed keyword length in characters, after trimming.
const MinSeedLength = 2

// MaxSeedLength bounds the seed keyword length in characters.
const MaxSeedLength = 80

// CodePattern defines the valid country and language code format: two letters.
var CodePattern = regexp.MustCompile(`^[a-zA-Z]{2}$`)

// NormalizeSeed trims surrounding whitespace from a seed keyword.
func NormalizeSeed(seed string) string {
	return strings.TrimSpace(seed)
}

// ValidateSeed checks a normalized seed keyword. Returns false and a message
// when it is too short or too long.
func ValidateSeed(seed string) (bool, string) {
	n := utf8.RuneCountInString(seed)
	if n < MinSeedLength {
		return false, "keyword must be at least 2 characters"
	}
	if n > MaxSeedLength {
		return false, "keyword must be at most 80 characters"
	}
	return true, ""
}

// ValidateCode checks if a country or language code matches CodePattern.
func ValidateCode(code string) bool {
	return CodePattern.MatchString(code)
}

// NormalizeCountry uppercases a country code.
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeLanguage lowercases a language code.
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
