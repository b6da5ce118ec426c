package wordgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/wordladder/wordgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDictionary_Normalizes verifies trimming, lowercasing and
// blank-entry skipping at construction time.
func TestNewDictionary_Normalizes(t *testing.T) {
	d := wordgraph.NewDictionary(" Tree ", "FREE", "", "   ")

	assert.Equal(t, 2, d.Len(), "blank entries must be skipped")
	assert.True(t, d.Contains("tree"), "input should be trimmed and lowercased")
	assert.True(t, d.Contains("free"))
	assert.False(t, d.Contains("Tree"), "membership is exact on the stored lowercase form")
}

// TestNewDictionary_Duplicates ensures repeated words collapse to one entry.
func TestNewDictionary_Duplicates(t *testing.T) {
	d := wordgraph.NewDictionary("tree", "TREE", " tree")
	assert.Equal(t, 1, d.Len())
}

// TestReadDictionary covers line-delimited parsing with mixed case,
// surrounding whitespace and blank lines.
func TestReadDictionary(t *testing.T) {
	in := "Four\ntire\n\n  TREE  \n"
	d, err := wordgraph.ReadDictionary(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	for _, w := range []string{"four", "tire", "tree"} {
		assert.True(t, d.Contains(w), "missing %q", w)
	}
}

// TestReadDictionary_NilReader verifies the ErrNilReader sentinel.
func TestReadDictionary_NilReader(t *testing.T) {
	_, err := wordgraph.ReadDictionary(nil)
	assert.ErrorIs(t, err, wordgraph.ErrNilReader)
}

// TestDictionary_Words verifies the sorted snapshot accessor.
func TestDictionary_Words(t *testing.T) {
	d := wordgraph.NewDictionary("tree", "four", "flee")
	assert.Equal(t, []string{"flee", "four", "tree"}, d.Words())

	// mutating the snapshot must not touch the dictionary
	words := d.Words()
	words[0] = "zzzz"
	assert.True(t, d.Contains("flee"))
	assert.False(t, d.Contains("zzzz"))
}
