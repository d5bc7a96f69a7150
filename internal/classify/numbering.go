package classify

import (
	"regexp"
	"strings"
)

// Numbering patterns recognized at the start of a heading line. Coverage is
// deliberately conservative: arabic dotted forms, chapter prefixes, short
// roman numerals and single letters with a "." or ")" terminator. The depth
// of a token is the count of its dot-separated segments.
var (
	arabicPattern   = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?\s+\S`)
	chapterPattern  = regexp.MustCompile(`(?i)^chapter\s+\d+`)
	romanPattern    = regexp.MustCompile(`^([IVXLCDM]{1,7}|[ivxlcdm]{1,7})[.)]\s+\S`)
	letteredPattern = regexp.MustCompile(`^([A-Za-z](?:\.\d+)*)[.)]?\s+\S`)
)

// Numbering is a parsed leading numbering token.
type Numbering struct {
	Prefix string // the token as it appears, e.g. "2.3.1"
	Depth  int    // count of dot-separated segments, e.g. 3
}

// ParseNumbering extracts a recognized numbering token from the start of a
// line. It requires text to follow the token, so a bare "12." page artifact
// never parses as numbering.
func ParseNumbering(text string) (Numbering, bool) {
	if chapterPattern.MatchString(text) {
		return Numbering{Prefix: strings.Fields(text)[0], Depth: 1}, true
	}

	if m := arabicPattern.FindStringSubmatch(text); m != nil {
		return Numbering{Prefix: m[1], Depth: strings.Count(m[1], ".") + 1}, true
	}

	if m := romanPattern.FindStringSubmatch(text); m != nil {
		return Numbering{Prefix: m[1], Depth: 1}, true
	}

	// Lettered items ("A.", "b)", "A.1") only count when terminated, to keep
	// ordinary sentences from matching.
	if m := letteredPattern.FindStringSubmatch(text); m != nil {
		token := m[1]
		if len(token) == 1 && !strings.ContainsAny(text[1:2], ".)") {
			return Numbering{}, false
		}
		return Numbering{Prefix: token, Depth: strings.Count(token, ".") + 1}, true
	}

	return Numbering{}, false
}
