package ranking

import (
	"strings"

	"github.com/jonathan/outline-extractor/internal/types"
)

// Weights for scoring components. Term overlap dominates; the level weight
// and early-page bonus only separate sections the query cannot.
const (
	termMatchWeight = 1.0
	levelWeightH1   = 0.6
	levelWeightH2   = 0.4
	levelWeightH3   = 0.2
	pageBonusWeight = 0.1
)

// computeTermOverlap counts how many distinct query terms occur in the block
// text (case-insensitive substring matching, so "dish" matches "dishes").
func computeTermOverlap(blockText string, terms []string) int {
	if len(terms) == 0 {
		return 0
	}
	blockLower := strings.ToLower(blockText)
	matches := 0
	for _, term := range terms {
		if strings.Contains(blockLower, term) {
			matches++
		}
	}
	return matches
}

// levelWeight reflects that higher heading levels are more likely to name
// genuinely salient sections.
func levelWeight(level types.HeadingLevel) float64 {
	switch level {
	case types.LevelH1:
		return levelWeightH1
	case types.LevelH2:
		return levelWeightH2
	case types.LevelH3:
		return levelWeightH3
	}
	return 0
}

// pageBonus favors earlier pages; it decays with page number and never
// outweighs a single term match.
func pageBonus(page int) float64 {
	return pageBonusWeight / float64(1+page)
}
