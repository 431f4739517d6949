package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases the input and strips combining diacritics, so that
// "Poção de Cura" and "pocao de cura" fold to the same key.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw string.
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ContainsFold reports whether substr occurs in s after folding both.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// EqualFold reports whether the two strings fold to the same key.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
