// Package grid is an illustrative client of pkg/astar: an 8-neighborhood
// ASCII grid with walls, used by the demo driver and by the core package's
// end-to-end tests. None of this is part of the search engine itself —
// neighbor topology, heuristic choice, and coordinate encoding are entirely
// the caller's concern (see pkg/astar's package doc).
package grid

import (
	"fmt"
	"strings"

	"github.com/cloudwu/pathfinding/pkg/astar"
)

// diagonalCost and orthogonalCost follow the reference grid demo's
// 5/7 weighting: 7 approximates 5*sqrt(2), so diagonal and orthogonal moves
// both map to integer costs usable with an admissible straight-line
// heuristic.
const (
	orthogonalCost = 5
	diagonalCost   = 7
)

type step struct {
	dx, dy int
	cost   uint32
}

var steps = [8]step{
	{-1, -1, diagonalCost},
	{+1, -1, diagonalCost},
	{-1, +1, diagonalCost},
	{+1, +1, diagonalCost},
	{-1, 0, orthogonalCost},
	{+1, 0, orthogonalCost},
	{0, -1, orthogonalCost},
	{0, +1, orthogonalCost},
}

// Grid is a parsed ASCII map: '#' is a wall, 'S' is the start, 'G' is the
// goal, everything else is open floor.
type Grid struct {
	Width, Height int
	Start, Goal   astar.Coord
	walls         []bool // row-major, len == Width*Height
}

// Encode packs a 2D position into the opaque Coord the engine deals in.
func Encode(x, y int) astar.Coord {
	return astar.Coord(uint32(x)<<16 | uint32(uint16(y)))
}

// Decode unpacks a Coord produced by Encode back into a 2D position.
func Decode(c astar.Coord) (x, y int) {
	return int(uint32(c) >> 16), int(uint32(uint16(c)))
}

// Parse reads an ASCII map (rows separated by '\n') into a Grid. It returns
// an error if no 'S' or no 'G' marker is found, or if rows have mismatched
// lengths.
func Parse(src string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(src, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("grid: empty map")
	}

	width := len(lines[0])
	height := len(lines)

	g := &Grid{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}

	haveStart, haveGoal := false, false

	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("grid: row %d has length %d, want %d", y, len(line), width)
		}
		for x, ch := range line {
			switch ch {
			case '#':
				g.walls[y*width+x] = true
			case 'S':
				g.Start = Encode(x, y)
				haveStart = true
			case 'G':
				g.Goal = Encode(x, y)
				haveGoal = true
			}
		}
	}

	if !haveStart {
		return nil, fmt.Errorf("grid: no 'S' start marker found")
	}
	if !haveGoal {
		return nil, fmt.Errorf("grid: no 'G' goal marker found")
	}

	return g, nil
}

func (g *Grid) blocked(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return true
	}
	return g.walls[y*g.Width+x]
}

// estimate computes the admissible diagonal-distance heuristic from (x,y)
// to the grid's goal: diagonal steps cover the shorter axis, the remainder
// travels the longer axis orthogonally.
func (g *Grid) estimate(x, y int) uint32 {
	gx, gy := Decode(g.Goal)
	dx := abs(gx - x)
	dy := abs(gy - y)

	var diff, short int
	if dx > dy {
		diff, short = dx-dy, dy
	} else {
		diff, short = dy-dx, dx
	}

	return uint32(diff*orthogonalCost + short*diagonalCost)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Neighbors returns an astar.NeighborFunc bound to this grid, suitable for
// use as Args.Neighbors in a Find call.
func (g *Grid) Neighbors() astar.NeighborFunc {
	return func(pos astar.Coord, out []astar.Neighbor) int {
		x, y := Decode(pos)
		if g.blocked(x, y) {
			return 0
		}

		n := 0
		for _, st := range steps {
			nx, ny := x+st.dx, y+st.dy
			if g.blocked(nx, ny) {
				continue
			}
			out[n] = astar.Neighbor{
				Pos:      Encode(nx, ny),
				Dist:     st.cost,
				Estimate: g.estimate(nx, ny),
			}
			n++
		}
		return n
	}
}

// Render draws the grid as ASCII art, overlaying a path (in order) as '.'
// marks over open floor.
func (g *Grid) Render(path []astar.Coord) string {
	marked := make([]bool, g.Width*g.Height)
	for _, c := range path {
		x, y := Decode(c)
		marked[y*g.Width+x] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch {
			case marked[y*g.Width+x]:
				b.WriteByte('.')
			case g.walls[y*g.Width+x]:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// grayRamp mirrors the reference demo's 8-level heatmap ramp.
const grayRamp = ".:-=+*O@"

// RenderHeatmap draws the grid with a gscore heatmap overlaid on explored,
// non-wall, non-marker cells using image as produced by astar.State.Image.
func (g *Grid) RenderHeatmap(image []byte) string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Encode(x, y)
			switch {
			case c == g.Start:
				b.WriteByte('S')
			case c == g.Goal:
				b.WriteByte('G')
			case g.walls[y*g.Width+x]:
				b.WriteByte('#')
			default:
				level := image[y*g.Width+x]
				if level == 0 {
					b.WriteByte(' ')
				} else {
					b.WriteByte(grayRamp[level/32])
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodePoint adapts Decode to astar.CoordToPoint for use with State.Image.
func (g *Grid) DecodePoint() astar.CoordToPoint {
	return func(c astar.Coord) (x, y int, ok bool) {
		x, y = Decode(c)
		return x, y, x >= 0 && x < g.Width && y >= 0 && y < g.Height
	}
}
