package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentrisk/internal/feature"
)

func vectorOf(names ...string) *feature.Vector {
	v := feature.New()
	for _, n := range names {
		v.Append(n, "x")
	}
	return v
}

func TestCaptureIsImmutable(t *testing.T) {
	cols := []string{"a", "b"}
	r := Capture(cols)
	cols[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, r.Columns())
	assert.Equal(t, 2, r.Size())
}

func TestMatchNamesMode(t *testing.T) {
	r := Capture([]string{"a", "b", "c"})

	assert.NoError(t, r.Match(vectorOf("a", "b", "c"), ModeNames))
	assert.Error(t, r.Match(vectorOf("a", "b"), ModeNames), "short vector")
	assert.Error(t, r.Match(vectorOf("a", "c", "b"), ModeNames), "swapped columns")
	assert.Error(t, r.Match(vectorOf("a", "b", "d"), ModeNames), "renamed column")
}

func TestMatchCountModeIsLegacyBehavior(t *testing.T) {
	r := Capture([]string{"a", "b", "c"})

	// Count mode reproduces the historical check: same cardinality passes
	// even with swapped or renamed columns.
	assert.NoError(t, r.Match(vectorOf("a", "c", "b"), ModeCount))
	assert.NoError(t, r.Match(vectorOf("x", "y", "z"), ModeCount))
	assert.Error(t, r.Match(vectorOf("a", "b"), ModeCount))
	assert.Error(t, r.Match(vectorOf("a", "b", "c", "d"), ModeCount))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")

	r := Capture([]string{"age", "phone", "price"})
	require.NoError(t, r.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.Columns(), loaded.Columns())
	assert.Equal(t, r.Size(), loaded.Size())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("names")
	require.NoError(t, err)
	assert.Equal(t, ModeNames, m)

	m, err = ParseMode("count")
	require.NoError(t, err)
	assert.Equal(t, ModeCount, m)

	_, err = ParseMode("strict")
	assert.Error(t, err)
}
