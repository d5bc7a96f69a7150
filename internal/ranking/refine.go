package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/outline-extractor/internal/classify"
	"github.com/jonathan/outline-extractor/internal/types"
)

const (
	// maxRefinedRunes bounds the length of a refined text snippet.
	maxRefinedRunes = 500

	// headingAnchorTolerance is the maximum vertical distance between an
	// outline entry and the raw line that anchors its body window.
	headingAnchorTolerance = 2.0
)

// refineText extracts the contiguous body text immediately following a
// heading on its page: whitespace-normalized and truncated. Other outline
// headings terminate the window. Returns "" when the heading line cannot be
// located or no body text follows.
func refineText(lines []types.Line, entry types.OutlineEntry, headingTexts map[string]bool) string {
	start := findHeadingLine(lines, entry)
	if start < 0 {
		return ""
	}

	var parts []string
	for _, line := range lines[start+1:] {
		if line.Page != entry.Page {
			break
		}
		cleaned := classify.CleanText(line.Text)
		if headingTexts[cleaned] {
			break
		}
		parts = append(parts, line.Text)
	}

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	return truncateRunes(text, maxRefinedRunes)
}

// findHeadingLine locates the first line of the (possibly merged) heading
// entry. The match is anchored by the entry's recorded page and vertical
// position, so an unrelated earlier line sharing a text prefix cannot claim
// the window.
func findHeadingLine(lines []types.Line, entry types.OutlineEntry) int {
	for i, line := range lines {
		if line.Page != entry.Page || math.Abs(line.Y-entry.Y) > headingAnchorTolerance {
			continue
		}
		cleaned := classify.CleanText(line.Text)
		if cleaned == "" {
			continue
		}
		if cleaned == entry.Text || strings.HasPrefix(entry.Text, cleaned) {
			return i
		}
	}
	return -1
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit]))
}
