package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Decompose, drop combining marks, recompose. Turns "Ngoại Thương" into
	// "Ngoai Thuong"; đ/Đ have no decomposition and fall to the collapse step.
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize folds free-form bank text into the canonical matching form:
// lowercase, diacritics stripped, every non-alphanumeric run collapsed to a
// single space, trimmed. Both directory entries and user queries go through
// this before comparison.
func Normalize(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw input
		// so both sides of a comparison stay consistent.
		stripped = s
	}
	stripped = strings.ToLower(stripped)
	stripped = nonAlnumRun.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(stripped)
}

// NormalizeName converts a payer name to its canonical trimmed form.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// CleanFileName removes invalid characters from a filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
