//go:build !debug_buddyalloc

package buddy

import "unsafe"

// allocTracker records live allocations so that double-release and
// foreign-pointer release can be detected. The default build compiles it
// down to a zero-cost no-op: misuse here is undefined and need not be
// detected unless the caller opts into the debug_buddyalloc build tag.
type allocTracker struct{}

func newAllocTracker() allocTracker { return allocTracker{} }

func (allocTracker) track(unsafe.Pointer, uint) {}

// untrack always reports success in production builds, since the tracker
// keeps no state to check against.
func (allocTracker) untrack(unsafe.Pointer) (uint, bool) { return 0, true }
