//go:build astar_debug

package astar

import "fmt"

// assert panics with a formatted message when cond is false. It only
// compiles into binaries built with -tags astar_debug; release builds pay
// nothing for it, matching spec.md's "assertions in debug builds" posture
// for misuse that a contract-respecting caller should never trigger.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("astar: invariant violated: "+format, args...))
	}
}
