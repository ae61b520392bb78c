//go:build debug

package eevdf

import "fmt"

// In debug builds, contract violations (spec §4.7/§7 — double-add, a
// Current node that is foreign to the queue or not running, removing a
// detached node, zero weight or time slice, a negative dt, selecting from
// an empty timeline) are fatal. This mirrors the paired debug/release
// hook pattern used by the allocator's header and canary validation
// (block_manager_debug.go / block_manager_debug_off.go): a debug build
// panics loudly, a release build pays nothing for the check.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("eevdf: "+format, args...))
	}
}
