package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingLevelDepth(t *testing.T) {
	assert.Equal(t, 0, LevelTitle.Depth())
	assert.Equal(t, 1, LevelH1.Depth())
	assert.Equal(t, 2, LevelH2.Depth())
	assert.Equal(t, 3, LevelH3.Depth())
	assert.Equal(t, 4, HeadingLevel("H7").Depth())
}

func TestHeadingByDepth(t *testing.T) {
	assert.Equal(t, LevelH1, HeadingByDepth(0))
	assert.Equal(t, LevelH1, HeadingByDepth(1))
	assert.Equal(t, LevelH2, HeadingByDepth(2))
	assert.Equal(t, LevelH3, HeadingByDepth(3))
	// Deeper numbering caps at H3.
	assert.Equal(t, LevelH3, HeadingByDepth(6))
}

func TestOutlineJSONShape(t *testing.T) {
	outline := Outline{
		Title: "Doc",
		Entries: []OutlineEntry{
			{Level: LevelH1, Text: "Intro", Page: 0},
		},
	}

	data, err := json.Marshal(outline)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Doc","outline":[{"level":"H1","text":"Intro","page":0}]}`, string(data))
}

func TestOutlineEmptyEntriesMarshalAsArray(t *testing.T) {
	outline := Outline{Title: "", Entries: []OutlineEntry{}}

	data, err := json.Marshal(outline)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"","outline":[]}`, string(data))
}
