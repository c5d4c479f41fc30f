package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwu/pathfinding/internal/scene"
)

func TestParseTolerantOfCommentsAndTrailingCommas(t *testing.T) {
	doc := []byte(`{
		// a three-cell corridor
		"map": "S G\n",
		"capacity": 1024,
		"budget_fraction": 0.5, // trailing comma above is fine too
	}`)

	sc, err := scene.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "S G\n", sc.Map)
	assert.EqualValues(t, 1024, sc.Capacity)
	assert.InDelta(t, 0.5, sc.BudgetFraction, 1e-9)
}

func TestParseDefaultsOmittedFields(t *testing.T) {
	sc, err := scene.Parse([]byte(`{"map": "SG"}`))
	require.NoError(t, err)
	assert.Zero(t, sc.Capacity)
	assert.Zero(t, sc.BudgetFraction)
}

func TestParseRejectsEmptyMap(t *testing.T) {
	_, err := scene.Parse([]byte(`{"map": ""}`))
	require.Error(t, err)
}

func TestParseRejectsOutOfRangeBudgetFraction(t *testing.T) {
	_, err := scene.Parse([]byte(`{"map": "SG", "budget_fraction": 1.5}`))
	require.Error(t, err)

	_, err = scene.Parse([]byte(`{"map": "SG", "budget_fraction": -0.1}`))
	require.Error(t, err)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := scene.Parse([]byte(`{not json`))
	require.Error(t, err)
}

func TestGridBuildsFromMap(t *testing.T) {
	sc, err := scene.Parse([]byte(`{"map": "S G\n"}`))
	require.NoError(t, err)

	g, err := sc.Grid()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 1, g.Height)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scene.Load("/nonexistent/path/to/scene.hujson")
	require.Error(t, err)
}
