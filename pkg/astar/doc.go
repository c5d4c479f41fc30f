// Package astar implements a reusable A* shortest-path search engine over a
// caller-defined implicit graph.
//
// The engine never allocates after construction. A caller-owned buffer
// doubles as an open-addressed hash table and, through an intrusive
// singly-linked field on every slot, a sorted open list. Reuse across
// queries is achieved by bumping a generation counter rather than clearing
// the buffer, so repeated searches on the same [State] cost no more setup
// than stamping a handful of fields.
//
// # Basic usage
//
//	size, err := astar.Size(gridSide)
//	if err != nil {
//	    // extent too large (see ErrExtentTooLarge)
//	}
//	buf := make([]byte, size)
//	state, err := astar.New(buf)
//	if err != nil {
//	    // buffer too small for a usable table (see ErrBufferTooSmall)
//	}
//
//	length, err := state.Find(astar.Args{
//	    Start: start,
//	    Goal:  goal,
//	    Neighbors: func(pos astar.Coord, out []astar.Neighbor) int {
//	        // fill out[:n] with (pos, dist, estimate) triples, return n
//	        return n
//	    },
//	})
//
//	path := make([]astar.Coord, length)
//	state.Path(path)
//
// # Return value of Find
//
// Following the engine this package is modeled on, [State.Find] packs three
// outcomes into one signed int:
//
//   - length > 0: the goal was reached; length is the path length.
//   - length < 0: the live-slot budget was exhausted before the goal was
//     reached; |length| is the length of the best-effort path to the
//     nearest frontier node.
//   - length == 0: the open list drained without reaching the goal (for
//     example, start has no neighbors); there is no path.
//
// # Memory exhaustion
//
// If the number of live slots would exceed half of the buffer's capacity,
// Find stops expanding and falls back to the best-effort frontier node
// instead of growing without bound. Half is the default; call
// [State.SetBudgetFraction] before Find to use a different threshold.
//
// # Concurrency
//
// A [State] is not safe for concurrent use. One query runs to completion (or
// exhaustion) before another begins on the same buffer; independent buffers
// may be searched concurrently from separate goroutines.
package astar
