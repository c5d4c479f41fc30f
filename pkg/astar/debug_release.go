//go:build !astar_debug

package astar

// assert is a no-op in release builds; see debug.go for the astar_debug
// build.
func assert(cond bool, format string, args ...any) {}
