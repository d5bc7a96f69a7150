// Package assemble turns classified heading candidates into a clean document
// outline: wrapped fragments merged, noise and running headers removed,
// duplicates dropped, title resolved.
package assemble

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/outline-extractor/internal/types"
)

const (
	// repetitionPageThreshold is the number of distinct pages on which the same
	// normalized text must appear at the same position before it is treated as
	// a running header or footer.
	repetitionPageThreshold = 3

	// positionBucketSize groups vertical positions when detecting repetition,
	// so small layout jitter between pages still collides.
	positionBucketSize = 20.0

	// titleMergeGap is the maximum vertical distance between two title
	// fragments that still belong to one rendered title.
	titleMergeGap = 50.0

	// fragmentGapFactor scales a heading's font size into the maximum vertical
	// distance between two lines of one wrapped heading.
	fragmentGapFactor = 1.8
)

// Assemble builds the outline from heading candidates in reading order.
// Entries preserve that order; they are never re-sorted by level.
func Assemble(candidates []types.HeadingCandidate) types.Outline {
	kept := dropNoise(candidates)
	kept = dropRepetitive(kept)
	kept = mergeFragments(kept)
	kept = dedupe(kept)

	outline := types.Outline{Entries: []types.OutlineEntry{}}
	for _, c := range kept {
		if c.Level == types.LevelTitle {
			if outline.Title == "" {
				outline.Title = c.Text
			}
			continue
		}
		outline.Entries = append(outline.Entries, types.OutlineEntry{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Page,
			Y:     c.Y,
		})
	}

	// No TITLE candidate: fall back to the first H1, then to empty.
	if outline.Title == "" {
		for _, entry := range outline.Entries {
			if entry.Level == types.LevelH1 {
				outline.Title = entry.Text
				break
			}
		}
	}

	return outline
}

func dropNoise(candidates []types.HeadingCandidate) []types.HeadingCandidate {
	kept := make([]types.HeadingCandidate, 0, len(candidates))
	for _, c := range candidates {
		if IsNoise(c.Text) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// dropRepetitive removes running headers and footers with a two-pass design:
// pass one counts distinct pages per (normalized text, position bucket), pass
// two filters candidates whose key repeats across enough pages.
func dropRepetitive(candidates []types.HeadingCandidate) []types.HeadingCandidate {
	pagesByKey := make(map[string]map[int]bool)
	for _, c := range candidates {
		key := repetitionKey(c)
		if pagesByKey[key] == nil {
			pagesByKey[key] = make(map[int]bool)
		}
		pagesByKey[key][c.Page] = true
	}

	kept := make([]types.HeadingCandidate, 0, len(candidates))
	for _, c := range candidates {
		if len(pagesByKey[repetitionKey(c)]) >= repetitionPageThreshold {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func repetitionKey(c types.HeadingCandidate) string {
	bucket := int(c.Y / positionBucketSize)
	return fmt.Sprintf("%s|%d", normalizeForRepetition(c.Text), bucket)
}

// mergeFragments collapses consecutive candidates that are visual lines of a
// single rendered heading: same level, same or adjacent page, vertically
// adjacent. Each fragment is compared against the previous raw line, not the
// merged head, so a three-line title still joins.
func mergeFragments(candidates []types.HeadingCandidate) []types.HeadingCandidate {
	var merged []types.HeadingCandidate
	var tail types.HeadingCandidate
	for _, c := range candidates {
		if len(merged) > 0 && isFragmentOf(tail, c) {
			last := &merged[len(merged)-1]
			last.Text = strings.Join(strings.Fields(last.Text+" "+c.Text), " ")
			tail = c
			continue
		}
		merged = append(merged, c)
		tail = c
	}
	return merged
}

func isFragmentOf(prev, next types.HeadingCandidate) bool {
	if prev.Level != next.Level {
		return false
	}
	// A numbered heading starts a new entry even when adjacent.
	if next.NumberingPrefix != "" {
		return false
	}
	gap := titleMergeGap
	if prev.Level != types.LevelTitle {
		gap = prev.FontSize * fragmentGapFactor
	}
	switch next.Page {
	case prev.Page:
		return math.Abs(next.Y-prev.Y) <= gap
	case prev.Page + 1:
		// A continuation across a page break sits at the top of the next page.
		return next.Y <= gap
	}
	return false
}

// dedupe drops entries repeating the same (level, text) on the same page.
func dedupe(candidates []types.HeadingCandidate) []types.HeadingCandidate {
	seen := make(map[string]bool)
	kept := make([]types.HeadingCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := fmt.Sprintf("%s|%s|%d", c.Level, c.Text, c.Page)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, c)
	}
	return kept
}
