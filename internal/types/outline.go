package types

// HeadingLevel identifies where a classified line sits in the document hierarchy.
type HeadingLevel string

// Heading levels, largest to smallest.
const (
	LevelTitle HeadingLevel = "TITLE"
	LevelH1    HeadingLevel = "H1"
	LevelH2    HeadingLevel = "H2"
	LevelH3    HeadingLevel = "H3"
)

// Depth returns the hierarchy depth of the level: 0 for TITLE through 3 for H3.
// Unknown levels report a depth below every real heading.
func (l HeadingLevel) Depth() int {
	switch l {
	case LevelTitle:
		return 0
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	}
	return 4
}

// HeadingByDepth returns the heading level for a numbering depth, capped at H3.
func HeadingByDepth(depth int) HeadingLevel {
	switch {
	case depth <= 1:
		return LevelH1
	case depth == 2:
		return LevelH2
	}
	return LevelH3
}

// HeadingCandidate is a line the classifier tagged as a heading, before
// assembly filters noise and merges wrapped fragments.
type HeadingCandidate struct {
	Text            string
	Page            int
	Level           HeadingLevel
	FontSize        float64
	FontName        string
	IsBold          bool
	NumberingPrefix string // leading numbering token, e.g. "1.2", if any
	Y               float64
}

// OutlineEntry is one heading in the final document outline. Y records the
// vertical position of the heading's first rendered line; it anchors body-text
// lookup and stays out of the wire format.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
	Y     float64      `json:"-"`
}

// Outline is the extracted structure of a single document. Entries keep
// reading order (page ascending, then vertical position ascending); the title
// is reported only in the Title field, never as an entry.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}
