// Package fontstats computes document-wide font-size statistics used to
// derive adaptive heading thresholds.
package fontstats

import (
	"math"
	"sort"

	"github.com/jonathan/outline-extractor/internal/types"
)

// minBodyPopulation is the minimum number of lines a size must cover before
// it can be taken as the body size. A rare oversized decorative glyph must
// not win the histogram.
const minBodyPopulation = 3

// tierCount is how many distinct larger-than-body sizes map to heading tiers
// (H1, H2, H3).
const tierCount = 3

// Profile holds the font-size statistics of one document. Built once, then
// read-only.
type Profile struct {
	// SizeHistogram maps rounded font sizes to the number of lines using them.
	SizeHistogram map[int]int
	// BodySize is the modal rounded size, assumed to be paragraph text.
	BodySize int
	// LargerSizes lists the distinct rounded sizes strictly greater than
	// BodySize, descending. The first three map to H1, H2, H3.
	LargerSizes []int
	// MaxSize is the largest rounded size seen anywhere in the document.
	MaxSize int
	// MaxSizeBold reports whether any line at MaxSize is bold. The title rule
	// prefers bold max-size lines but falls back to size alone.
	MaxSizeBold bool
}

// Round converts a raw font size to its histogram bucket.
func Round(size float64) int {
	return int(math.Round(size))
}

// BuildProfile computes the font profile from all lines of a document.
// A document with a single font size everywhere yields an empty LargerSizes,
// leaving classification to numbering, bold and positional heuristics.
func BuildProfile(lines []types.Line) *Profile {
	profile := &Profile{SizeHistogram: make(map[int]int)}

	for _, line := range lines {
		size := Round(line.FontSize)
		profile.SizeHistogram[size]++
		if size > profile.MaxSize {
			profile.MaxSize = size
			profile.MaxSizeBold = line.IsBold
		} else if size == profile.MaxSize && line.IsBold {
			profile.MaxSizeBold = true
		}
	}

	if len(profile.SizeHistogram) == 0 {
		return profile
	}

	profile.BodySize = modalSize(profile.SizeHistogram)

	for size := range profile.SizeHistogram {
		if size > profile.BodySize {
			profile.LargerSizes = append(profile.LargerSizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(profile.LargerSizes)))

	return profile
}

// Tier returns the heading tier (0 for H1, 1 for H2, 2 for H3) of a rounded
// size, or false if the size is not one of the top larger-than-body sizes.
func (p *Profile) Tier(size int) (int, bool) {
	limit := len(p.LargerSizes)
	if limit > tierCount {
		limit = tierCount
	}
	for i := 0; i < limit; i++ {
		if p.LargerSizes[i] == size {
			return i, true
		}
	}
	return 0, false
}

// modalSize picks the most frequent size among sizes meeting the population
// threshold; if none qualifies, the plain mode wins. Ties break toward the
// smaller size so body text never loses to a heading size with equal count.
func modalSize(histogram map[int]int) int {
	best, bestCount := pickMode(histogram, minBodyPopulation)
	if bestCount == 0 {
		best, _ = pickMode(histogram, 0)
	}
	return best
}

func pickMode(histogram map[int]int, minCount int) (int, int) {
	var best, bestCount int
	for size, count := range histogram {
		if count < minCount {
			continue
		}
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best, bestCount
}
