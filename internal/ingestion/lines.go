package ingestion

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/outline-extractor/internal/types"
)

// minBaselineTolerance is the smallest vertical band, in page units, that
// still groups two runs onto one line. Very small fonts would otherwise
// fragment a single visual line into several.
const minBaselineTolerance = 2.0

// GroupLines groups text runs into visual lines: same page, same vertical
// band. The result is in reading order (page ascending, then top edge
// ascending, then left edge ascending within a line).
func GroupLines(runs []types.TextRun) []types.Line {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]types.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var lines []types.Line
	var current []types.TextRun

	for _, run := range sorted {
		if len(current) > 0 && !sameBaseline(current[0], run) {
			if line, ok := compactLine(current); ok {
				lines = append(lines, line)
			}
			current = nil
		}
		current = append(current, run)
	}
	if line, ok := compactLine(current); ok {
		lines = append(lines, line)
	}

	return lines
}

// sameBaseline reports whether two runs share a visual line. The band grows
// with the font size so headings set in large type still merge correctly.
func sameBaseline(a, b types.TextRun) bool {
	if a.Page != b.Page {
		return false
	}
	tolerance := a.FontSize / 2
	if tolerance < minBaselineTolerance {
		tolerance = minBaselineTolerance
	}
	return math.Abs(a.BBox.Y0-b.BBox.Y0) < tolerance
}

// compactLine concatenates the runs of one visual line into a Line. The
// dominant font size is the largest run size; the line is bold if any run is.
// Lines whose text is empty after normalization are dropped.
func compactLine(runs []types.TextRun) (types.Line, bool) {
	if len(runs) == 0 {
		return types.Line{}, false
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].BBox.X0 < runs[j].BBox.X0
	})

	var parts []string
	line := types.Line{
		Page: runs[0].Page,
		X:    runs[0].BBox.X0,
		Y:    runs[0].BBox.Y0,
	}
	for _, run := range runs {
		if text := strings.TrimSpace(run.Text); text != "" {
			parts = append(parts, text)
		}
		if run.FontSize > line.FontSize {
			line.FontSize = run.FontSize
			line.FontName = run.FontName
		}
		if run.IsBold {
			line.IsBold = true
		}
		if run.BBox.Y0 < line.Y {
			line.Y = run.BBox.Y0
		}
	}

	line.Text = strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if line.Text == "" {
		return types.Line{}, false
	}
	return line, true
}
