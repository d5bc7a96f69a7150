// Package classify labels visual lines as title/heading/body using an
// ordered list of priority rules over font statistics and text patterns.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/outline-extractor/internal/fontstats"
	"github.com/jonathan/outline-extractor/internal/types"
)

const (
	// minHeadingLength and maxHeadingLength bound the cleaned text length,
	// in runes, of any heading candidate.
	minHeadingLength = 2
	maxHeadingLength = 200

	// maxFallbackWords is the word limit for the bold+uppercase fallback rule.
	maxFallbackWords = 12
)

var (
	bulletPattern       = regexp.MustCompile(`[•▪▫‣⁃]`)
	leadingDashPattern  = regexp.MustCompile(`^\s*[-–—]\s*`)
	trailingPagePattern = regexp.MustCompile(`\s+\d+$`)
)

// CleanText normalizes a line before classification: collapses whitespace,
// removes bullet glyphs and leading dashes, and strips a trailing page
// number. Chapter headings keep their number.
func CleanText(text string) string {
	text = bulletPattern.ReplaceAllString(text, "")
	text = leadingDashPattern.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")
	if !chapterPattern.MatchString(text) {
		text = trailingPagePattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// match is one priority rule. It reports the level and the numbering prefix
// (when the rule derives one) for a cleaned line.
type match func(line types.Line, text string) (types.HeadingLevel, string, bool)

// rule pairs a name with its predicate so the rule order stays auditable.
type rule struct {
	name  string
	apply match
}

// Classifier labels lines one document at a time. Classification is a pure
// function of (line, profile) except for the running title-seen flag, which
// guarantees at most one TITLE per document.
type Classifier struct {
	profile   *fontstats.Profile
	titleSeen bool
	rules     []rule
}

// New creates a Classifier for one document's font profile.
func New(profile *fontstats.Profile) *Classifier {
	c := &Classifier{profile: profile}
	c.rules = []rule{
		{name: "title", apply: c.titleRule},
		{name: "numbering", apply: c.numberingRule},
		{name: "size-tier", apply: c.sizeTierRule},
		{name: "bold-uppercase", apply: c.boldUppercaseRule},
	}
	return c
}

// Classify runs the rules in priority order against one line; the first match
// wins. It returns false when the line is body text.
func (c *Classifier) Classify(line types.Line) (types.HeadingCandidate, bool) {
	text := CleanText(line.Text)
	if n := utf8.RuneCountInString(text); n < minHeadingLength || n > maxHeadingLength {
		return types.HeadingCandidate{}, false
	}

	for _, r := range c.rules {
		level, prefix, ok := r.apply(line, text)
		if !ok {
			continue
		}
		if level == types.LevelTitle {
			c.titleSeen = true
		}
		return types.HeadingCandidate{
			Text:            text,
			Page:            line.Page,
			Level:           level,
			FontSize:        line.FontSize,
			FontName:        line.FontName,
			IsBold:          line.IsBold,
			NumberingPrefix: prefix,
			Y:               line.Y,
		}, true
	}

	return types.HeadingCandidate{}, false
}

// titleRule tags the first page-0 line at the document's maximum size. Bold
// is required only when some max-size line is bold; later ties fall through
// and classify as H1 via the size tiers.
func (c *Classifier) titleRule(line types.Line, _ string) (types.HeadingLevel, string, bool) {
	if c.titleSeen || line.Page != 0 {
		return "", "", false
	}
	// A uniform-size document has no size signal at all; the max size must
	// stand out from body text to mark a title.
	if c.profile.MaxSize <= c.profile.BodySize {
		return "", "", false
	}
	if fontstats.Round(line.FontSize) != c.profile.MaxSize {
		return "", "", false
	}
	if c.profile.MaxSizeBold && !line.IsBold {
		return "", "", false
	}
	return types.LevelTitle, "", true
}

// numberingRule maps an explicit numbering token to its depth. It overrides
// the size tiers: numbering is a stronger human-authored signal than
// rendered size.
func (c *Classifier) numberingRule(_ types.Line, text string) (types.HeadingLevel, string, bool) {
	numbering, ok := ParseNumbering(text)
	if !ok {
		return "", "", false
	}
	return types.HeadingByDepth(numbering.Depth), numbering.Prefix, true
}

// sizeTierRule maps the top three larger-than-body sizes to H1..H3.
func (c *Classifier) sizeTierRule(line types.Line, _ string) (types.HeadingLevel, string, bool) {
	tier, ok := c.profile.Tier(fontstats.Round(line.FontSize))
	if !ok {
		return "", "", false
	}
	return types.HeadingByDepth(tier + 1), "", true
}

// boldUppercaseRule catches stylized headers rendered at body size: short,
// bold, entirely uppercase lines tag H3.
func (c *Classifier) boldUppercaseRule(line types.Line, text string) (types.HeadingLevel, string, bool) {
	if !line.IsBold || fontstats.Round(line.FontSize) > c.profile.BodySize {
		return "", "", false
	}
	if len(strings.Fields(text)) > maxFallbackWords {
		return "", "", false
	}
	if !isUppercase(text) {
		return "", "", false
	}
	return types.LevelH3, "", true
}

// isUppercase reports whether the text contains at least one letter and no
// lowercase letters.
func isUppercase(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
