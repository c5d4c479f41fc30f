package astar

// Hardcoded implementation limits.
//
// These mirror the fixed bounds baked into the original engine rather than
// being independently chosen: MaxNeighbors is the caller-visible contract for
// the neighbor callback, minPow2 is the smallest table this engine considers
// usable, and minSlots gives Size a floor so tiny grids still get
// a table with enough headroom to avoid needless probe-chain pressure.
const (
	// MaxNeighbors is the maximum number of neighbor descriptors a
	// NeighborFunc may write in a single call.
	MaxNeighbors = 16

	// minPow2 is the smallest accepted capacity exponent. A table with
	// fewer than 1<<minPow2 slots defeats the point of the exhaustion
	// fallback, which assumes a reasonably sparse open-addressed table.
	minPow2 = 8

	// minSlots is the floor used by Size when the caller's grid is small
	// enough that area = extent*extent would otherwise yield a tiny table.
	minSlots = 1024
)
