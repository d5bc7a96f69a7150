package assemble

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	dotLeaderPattern  = regexp.MustCompile(`^[.\-•▪▫‣⁃]{5,}$`)
	pageNumberPattern = regexp.MustCompile(`^\d{1,2}\.?$`)
)

// IsNoise reports whether candidate text is a layout artifact rather than a
// heading: dot leaders, bare page numbers, or very short non-alphabetic junk.
func IsNoise(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	if dotLeaderPattern.MatchString(text) {
		return true
	}
	if pageNumberPattern.MatchString(text) {
		return true
	}
	if len(text) <= 3 && !isAlpha(text) {
		return true
	}
	return false
}

func isAlpha(text string) bool {
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(text) > 0
}

// normalizeForRepetition reduces text to a form stable across running
// headers and footers: uppercased with digits and spaces removed, so
// "Page 3 of 12" and "Page 7 of 12" collide.
func normalizeForRepetition(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(text) {
		if unicode.IsDigit(r) || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
