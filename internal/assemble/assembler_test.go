package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outline-extractor/internal/types"
)

func TestAssemble_TitleAndEntries(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Understanding AI", Page: 0, Level: types.LevelTitle, FontSize: 24, Y: 50},
		{Text: "1. Introduction", Page: 0, Level: types.LevelH1, FontSize: 16, NumberingPrefix: "1", Y: 120},
		{Text: "1.1 History", Page: 0, Level: types.LevelH2, FontSize: 14, NumberingPrefix: "1.1", Y: 300},
	}

	outline := Assemble(candidates)
	assert.Equal(t, "Understanding AI", outline.Title)
	require.Len(t, outline.Entries, 2)
	assert.Equal(t, types.LevelH1, outline.Entries[0].Level)
	assert.Equal(t, "1. Introduction", outline.Entries[0].Text)
	assert.Equal(t, types.LevelH2, outline.Entries[1].Level)
	// The title never appears as an entry.
	for _, entry := range outline.Entries {
		assert.NotEqual(t, "Understanding AI", entry.Text)
	}
}

func TestAssemble_TitleFallsBackToFirstH1(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Overview", Page: 0, Level: types.LevelH1, FontSize: 18, Y: 100},
		{Text: "Details", Page: 1, Level: types.LevelH1, FontSize: 18, Y: 100},
	}

	outline := Assemble(candidates)
	assert.Equal(t, "Overview", outline.Title)
	// The fallback H1 stays in the entries.
	require.Len(t, outline.Entries, 2)
	assert.Equal(t, "Overview", outline.Entries[0].Text)
}

func TestAssemble_NoCandidates(t *testing.T) {
	outline := Assemble(nil)
	assert.Equal(t, "", outline.Title)
	assert.NotNil(t, outline.Entries)
	assert.Empty(t, outline.Entries)
}

func TestAssemble_MergesWrappedHeading(t *testing.T) {
	// Two visual lines of one 16pt heading, 25 units apart (within 16*1.8).
	candidates := []types.HeadingCandidate{
		{Text: "A Very Long Section Name", Page: 2, Level: types.LevelH1, FontSize: 16, Y: 100},
		{Text: "That Wraps Onto Two Lines", Page: 2, Level: types.LevelH1, FontSize: 16, Y: 125},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 1)
	assert.Equal(t, "A Very Long Section Name That Wraps Onto Two Lines", outline.Entries[0].Text)
	assert.Equal(t, 2, outline.Entries[0].Page)
}

func TestAssemble_MergesThreeLineTitle(t *testing.T) {
	// Consecutive title fragments chain: each joins its predecessor, so the
	// third line (80 units below the first) still merges.
	candidates := []types.HeadingCandidate{
		{Text: "Annual Report", Page: 0, Level: types.LevelTitle, FontSize: 28, Y: 100},
		{Text: "on the State of", Page: 0, Level: types.LevelTitle, FontSize: 28, Y: 140},
		{Text: "Document Processing", Page: 0, Level: types.LevelTitle, FontSize: 28, Y: 180},
	}

	outline := Assemble(candidates)
	assert.Equal(t, "Annual Report on the State of Document Processing", outline.Title)
	assert.Empty(t, outline.Entries)
}

func TestAssemble_MergesHeadingWrappedAcrossPageBreak(t *testing.T) {
	// The second line lands at the very top of the next page; it is the same
	// rendered heading and joins the first, keeping the first page number.
	candidates := []types.HeadingCandidate{
		{Text: "Deployment Considerations for", Page: 1, Level: types.LevelH1, FontSize: 16, Y: 770},
		{Text: "Distributed Systems", Page: 2, Level: types.LevelH1, FontSize: 16, Y: 20},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 1)
	assert.Equal(t, "Deployment Considerations for Distributed Systems", outline.Entries[0].Text)
	assert.Equal(t, 1, outline.Entries[0].Page)
}

func TestAssemble_NextPageHeadingBelowTopDoesNotMerge(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "First Chapter Heading", Page: 1, Level: types.LevelH1, FontSize: 16, Y: 770},
		{Text: "Second Chapter Heading", Page: 2, Level: types.LevelH1, FontSize: 16, Y: 120},
	}

	outline := Assemble(candidates)
	assert.Len(t, outline.Entries, 2)
}

func TestAssemble_NumberedHeadingNeverMergesIntoPrevious(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "2.1 First Topic", Page: 1, Level: types.LevelH2, FontSize: 14, NumberingPrefix: "2.1", Y: 100},
		{Text: "2.2 Second Topic", Page: 1, Level: types.LevelH2, FontSize: 14, NumberingPrefix: "2.2", Y: 120},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 2)
	assert.Equal(t, "2.1 First Topic", outline.Entries[0].Text)
	assert.Equal(t, "2.2 Second Topic", outline.Entries[1].Text)
}

func TestAssemble_DistantLinesDoNotMerge(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Early Heading", Page: 1, Level: types.LevelH1, FontSize: 16, Y: 100},
		{Text: "Late Heading", Page: 1, Level: types.LevelH1, FontSize: 16, Y: 400},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 2)
}

func TestAssemble_DropsRepetitiveRunningHeaders(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Journal of Testing", Page: 0, Level: types.LevelH3, FontSize: 10, Y: 20},
		{Text: "Real Heading", Page: 0, Level: types.LevelH1, FontSize: 18, Y: 100},
		{Text: "Journal of Testing", Page: 1, Level: types.LevelH3, FontSize: 10, Y: 20},
		{Text: "Journal of Testing", Page: 2, Level: types.LevelH3, FontSize: 10, Y: 20},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 1)
	assert.Equal(t, "Real Heading", outline.Entries[0].Text)
}

func TestAssemble_RepetitiveDetectionIgnoresDigits(t *testing.T) {
	// "Page N of 12" varies per page but normalizes to the same key.
	candidates := []types.HeadingCandidate{
		{Text: "Page 3 of 12", Page: 0, Level: types.LevelH3, FontSize: 9, Y: 800},
		{Text: "Page 4 of 12", Page: 1, Level: types.LevelH3, FontSize: 9, Y: 800},
		{Text: "Page 5 of 12", Page: 2, Level: types.LevelH3, FontSize: 9, Y: 800},
	}

	outline := Assemble(candidates)
	assert.Empty(t, outline.Entries)
}

func TestAssemble_TwoPageRepeatIsKept(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Summary", Page: 0, Level: types.LevelH2, FontSize: 14, Y: 100},
		{Text: "Summary", Page: 3, Level: types.LevelH2, FontSize: 14, Y: 100},
	}

	outline := Assemble(candidates)
	assert.Len(t, outline.Entries, 2)
}

func TestAssemble_DedupesSamePageRepeats(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: "Results", Page: 1, Level: types.LevelH1, FontSize: 18, Y: 100},
		{Text: "Results", Page: 1, Level: types.LevelH1, FontSize: 18, Y: 500},
	}

	outline := Assemble(candidates)
	assert.Len(t, outline.Entries, 1)
}

func TestAssemble_PreservesReadingOrder(t *testing.T) {
	// Entries stay in reading order even when deeper levels come first.
	candidates := []types.HeadingCandidate{
		{Text: "1.1 Early Detail", Page: 0, Level: types.LevelH2, FontSize: 14, NumberingPrefix: "1.1", Y: 100},
		{Text: "2 Later Section", Page: 1, Level: types.LevelH1, FontSize: 18, NumberingPrefix: "2", Y: 50},
		{Text: "2.1.1 Late Detail", Page: 2, Level: types.LevelH3, FontSize: 12, NumberingPrefix: "2.1.1", Y: 50},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 3)
	assert.Equal(t, "1.1 Early Detail", outline.Entries[0].Text)
	assert.Equal(t, "2 Later Section", outline.Entries[1].Text)
	assert.Equal(t, "2.1.1 Late Detail", outline.Entries[2].Text)
}

func TestAssemble_DropsNoiseCandidates(t *testing.T) {
	candidates := []types.HeadingCandidate{
		{Text: ".......", Page: 0, Level: types.LevelH3, FontSize: 12, Y: 100},
		{Text: "7", Page: 0, Level: types.LevelH3, FontSize: 12, Y: 200},
		{Text: "Valid Heading", Page: 0, Level: types.LevelH1, FontSize: 18, Y: 300},
	}

	outline := Assemble(candidates)
	require.Len(t, outline.Entries, 1)
	assert.Equal(t, "Valid Heading", outline.Entries[0].Text)
}
