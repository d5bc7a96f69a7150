// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/outline-extractor/internal/fontstats"
	"github.com/jonathan/outline-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFontProfile outputs the font statistics driving heading thresholds.
func (p *Printer) PrintFontProfile(profile *fontstats.Profile) {
	if profile == nil || len(profile.SizeHistogram) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Body size:  %d\n", profile.BodySize))
	sb.WriteString(fmt.Sprintf("Max size:   %d (bold: %t)\n", profile.MaxSize, profile.MaxSizeBold))

	if len(profile.LargerSizes) > 0 {
		tiers := make([]string, 0, len(profile.LargerSizes))
		for _, size := range profile.LargerSizes {
			tiers = append(tiers, fmt.Sprintf("%d", size))
		}
		sb.WriteString(fmt.Sprintf("Tiers:      %s\n", strings.Join(tiers, " > ")))
	} else {
		sb.WriteString("Tiers:      (none; single-size document)\n")
	}

	sizes := make([]int, 0, len(profile.SizeHistogram))
	for size := range profile.SizeHistogram {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	sb.WriteString("\nHistogram:\n")
	for _, size := range sizes {
		sb.WriteString(fmt.Sprintf("  %2dpt × %d\n", size, profile.SizeHistogram[size]))
	}

	p.printBox("FONT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutline outputs the extracted outline with indentation per level.
func (p *Printer) PrintOutline(outline *types.Outline) {
	if outline == nil {
		return
	}

	var sb strings.Builder
	title := outline.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("Title: %s\n\n", title))

	if len(outline.Entries) == 0 {
		sb.WriteString("No headings found")
	}

	count := min(len(outline.Entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := outline.Entries[i]
		indent := strings.Repeat("  ", entry.Level.Depth()-1)
		text := entry.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s%s %s (p.%d)\n", indent, entry.Level, text, entry.Page))
	}
	if len(outline.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more headings", len(outline.Entries)-maxItemsToShow))
	}

	p.printBox("DOCUMENT OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedSections outputs the top ranked sections with their documents.
func (p *Printer) PrintRankedSections(sections []types.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d sections:\n\n", len(sections)))

	count := min(len(sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := sections[i]
		title := section.SectionTitle
		if len(title) > 36 {
			title = title[:33] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", section.ImportanceRank, title))
		sb.WriteString(fmt.Sprintf("    %s, p.%d\n", section.Document, section.PageNumber))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RANKED SECTIONS", sb.String())
}
