package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName turns a display name into the comparison key used for
// player matching: trimmed, lowercased and with diacritics folded to
// their base letters ("Oihan Sáncet " -> "oihan sancet").
func NormalizeName(name string) string {
	return FoldDiacritics(strings.ToLower(strings.TrimSpace(name)))
}

// FoldDiacritics removes combining marks from a string, mapping accented
// characters to their unaccented base letter. The input is returned
// unchanged if the transform fails.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
