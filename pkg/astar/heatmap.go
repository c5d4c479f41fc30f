package astar

// CoordToPoint maps an opaque Coord back to a 2D position for heatmap
// export. The engine never interprets coordinates itself (see package doc);
// callers supply this mapping explicitly rather than the engine hard-coding
// one, so the same State can serve graphs with any coordinate convention.
type CoordToPoint func(c Coord) (x, y int, ok bool)

// Image renders a debug heatmap of the region explored by the last query
// into out, an x*y byte buffer in row-major order (out[y*width+x]). For
// every slot still live in the current epoch, decode maps its coordinate to
// a point; slots that decode outside [0,width)x[0,height), or whose decode
// reports !ok, are skipped. Each written byte is the slot's gscore
// normalized to the live slot with the highest gscore, scaled to [0,255].
//
// Image returns the number of live slots considered (including any skipped
// for being out of bounds), or 0 if no query has produced any live slots.
func (s *State) Image(out []byte, width, height int, decode CoordToPoint) int {
	for i := range out {
		out[i] = 0
	}

	epoch := s.epoch()
	var maxGscore uint64
	count := 0

	for i := uint64(0); i < s.capacity; i++ {
		if s.slotEpoch(i) != epoch {
			continue
		}
		count++
		if g := s.slotGscore(i); g > maxGscore {
			maxGscore = g
		}
	}

	if maxGscore == 0 {
		// every live slot has gscore 0, so every level is 0
		return count
	}

	for i := uint64(0); i < s.capacity; i++ {
		if s.slotEpoch(i) != epoch {
			continue
		}

		x, y, ok := decode(s.slotCoord(i))
		if !ok || x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		level := s.slotGscore(i) * 255 / maxGscore
		out[y*width+x] = byte(level)
	}

	return count
}
