package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwu/pathfinding/internal/grid"
	"github.com/cloudwu/pathfinding/pkg/astar"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct{ x, y int }{
		{0, 0}, {1, 0}, {0, 1}, {1234, 5678}, {65535, 65535},
	}
	for _, c := range cases {
		got := grid.Encode(c.x, c.y)
		x, y := grid.Decode(got)
		assert.Equal(t, c.x, x)
		assert.Equal(t, c.y, y)
	}
}

func TestParseFindsMarkers(t *testing.T) {
	g, err := grid.Parse("S #\n # \n  G\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, grid.Encode(0, 0), g.Start)
	assert.Equal(t, grid.Encode(2, 2), g.Goal)
}

func TestParseRejectsMissingMarkers(t *testing.T) {
	_, err := grid.Parse("   \n   \n")
	require.Error(t, err)

	_, err = grid.Parse("S  \n   \n")
	require.Error(t, err)
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := grid.Parse("S G\nxx\n")
	require.Error(t, err)
}

func TestNeighborsRespectsWalls(t *testing.T) {
	g, err := grid.Parse("S#G\n###\n   \n")
	require.NoError(t, err)

	n := g.Neighbors()
	var out [astar.MaxNeighbors]astar.Neighbor
	count := n(g.Start, out[:])

	for i := 0; i < count; i++ {
		assert.NotEqual(t, grid.Encode(1, 0), out[i].Pos, "must not step onto the wall at (1,0)")
	}
}

func TestNeighborsCostsMatchTopology(t *testing.T) {
	g, err := grid.Parse("S  \n   \n  G\n")
	require.NoError(t, err)

	n := g.Neighbors()
	var out [astar.MaxNeighbors]astar.Neighbor
	count := n(g.Start, out[:])
	require.Equal(t, 3, count) // corner cell: right, down, down-right

	for i := 0; i < count; i++ {
		x, y := grid.Decode(out[i].Pos)
		if x == 1 && y == 1 {
			assert.EqualValues(t, 7, out[i].Dist) // diagonal
		} else {
			assert.EqualValues(t, 5, out[i].Dist) // orthogonal
		}
	}
}

func TestBlockedStartHasNoNeighbors(t *testing.T) {
	g, err := grid.Parse("###\n#S#\n###\n")
	require.NoError(t, err)

	n := g.Neighbors()
	var out [astar.MaxNeighbors]astar.Neighbor
	count := n(g.Start, out[:])
	assert.Equal(t, 0, count)
}

func TestRenderOverlaysPath(t *testing.T) {
	g, err := grid.Parse("S  \n   \n  G\n")
	require.NoError(t, err)

	path := []astar.Coord{g.Start, grid.Encode(1, 1), g.Goal}
	rendered := g.Render(path)

	assert.Contains(t, rendered, ".")
}

func TestRenderHeatmapMarksStartAndGoal(t *testing.T) {
	g, err := grid.Parse("S  \n   \n  G\n")
	require.NoError(t, err)

	image := make([]byte, g.Width*g.Height)
	rendered := g.RenderHeatmap(image)

	assert.Contains(t, rendered, "S")
	assert.Contains(t, rendered, "G")
}

func TestDecodePointReportsOutOfBounds(t *testing.T) {
	g, err := grid.Parse("S \n G\n")
	require.NoError(t, err)

	decode := g.DecodePoint()
	_, _, ok := decode(grid.Encode(0, 0))
	assert.True(t, ok)

	_, _, ok = decode(grid.Encode(99, 99))
	assert.False(t, ok)
}
