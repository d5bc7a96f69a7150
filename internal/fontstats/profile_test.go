package fontstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outline-extractor/internal/types"
)

// linesAt builds n lines at the given size, optionally bold.
func linesAt(n int, size float64, bold bool) []types.Line {
	lines := make([]types.Line, n)
	for i := range lines {
		lines[i] = types.Line{Text: "x", FontSize: size, IsBold: bold}
	}
	return lines
}

func TestBuildProfile_BodyIsModalSize(t *testing.T) {
	lines := append(linesAt(10, 11, false), linesAt(2, 16, true)...)
	lines = append(lines, linesAt(1, 24, true)...)

	profile := BuildProfile(lines)
	assert.Equal(t, 11, profile.BodySize)
	assert.Equal(t, 24, profile.MaxSize)
	assert.True(t, profile.MaxSizeBold)
	assert.Equal(t, []int{24, 16}, profile.LargerSizes)
}

func TestBuildProfile_RareLargeSizeNeverWinsBody(t *testing.T) {
	// Two oversized decorative lines must not become the body size even if
	// they tie other sizes; the population threshold filters them out.
	lines := append(linesAt(3, 10, false), linesAt(2, 30, false)...)

	profile := BuildProfile(lines)
	assert.Equal(t, 10, profile.BodySize)
}

func TestBuildProfile_PopulationFallbackToPlainMode(t *testing.T) {
	// Nothing reaches the population threshold; plain mode decides.
	lines := append(linesAt(2, 12, false), linesAt(1, 18, false)...)

	profile := BuildProfile(lines)
	assert.Equal(t, 12, profile.BodySize)
}

func TestBuildProfile_TieBreaksTowardSmallerSize(t *testing.T) {
	lines := append(linesAt(4, 11, false), linesAt(4, 14, false)...)

	profile := BuildProfile(lines)
	assert.Equal(t, 11, profile.BodySize)
	assert.Equal(t, []int{14}, profile.LargerSizes)
}

func TestBuildProfile_UniformDocument(t *testing.T) {
	profile := BuildProfile(linesAt(20, 12, false))

	assert.Equal(t, 12, profile.BodySize)
	assert.Equal(t, 12, profile.MaxSize)
	assert.Empty(t, profile.LargerSizes)
}

func TestBuildProfile_EmptyDocument(t *testing.T) {
	profile := BuildProfile(nil)

	assert.Empty(t, profile.SizeHistogram)
	assert.Zero(t, profile.BodySize)
	assert.Zero(t, profile.MaxSize)
}

func TestBuildProfile_RoundsFractionalSizes(t *testing.T) {
	lines := []types.Line{
		{Text: "a", FontSize: 11.4},
		{Text: "b", FontSize: 10.8},
		{Text: "c", FontSize: 10.6},
	}

	profile := BuildProfile(lines)
	assert.Equal(t, 3, profile.SizeHistogram[11])
	assert.Equal(t, 11, profile.MaxSize)
}

func TestTier_MapsTopThreeSizes(t *testing.T) {
	lines := append(linesAt(10, 10, false), linesAt(1, 24, false)...)
	lines = append(lines, linesAt(2, 18, false)...)
	lines = append(lines, linesAt(2, 14, false)...)
	lines = append(lines, linesAt(2, 12, false)...)

	profile := BuildProfile(lines)
	require.Equal(t, []int{24, 18, 14, 12}, profile.LargerSizes)

	tier, ok := profile.Tier(24)
	require.True(t, ok)
	assert.Equal(t, 0, tier)

	tier, ok = profile.Tier(18)
	require.True(t, ok)
	assert.Equal(t, 1, tier)

	tier, ok = profile.Tier(14)
	require.True(t, ok)
	assert.Equal(t, 2, tier)

	// Fourth size and body size never map to a tier.
	_, ok = profile.Tier(12)
	assert.False(t, ok)
	_, ok = profile.Tier(10)
	assert.False(t, ok)
}

func TestMaxSizeBold_AnyBoldLineAtMaxCounts(t *testing.T) {
	lines := []types.Line{
		{Text: "regular", FontSize: 24, IsBold: false},
		{Text: "bold", FontSize: 24, IsBold: true},
		{Text: "body", FontSize: 11},
	}

	profile := BuildProfile(lines)
	assert.True(t, profile.MaxSizeBold)
}
