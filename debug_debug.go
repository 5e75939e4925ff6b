//go:build debug_buddyalloc

package buddy

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
)

// allocTracker records every outstanding allocation's address and order in
// a swiss.Map so that Release can catch two misuse cases that are
// otherwise silently undefined: releasing a pointer twice, and releasing a
// pointer this allocator never handed out. Gated behind the
// debug_buddyalloc build tag so the default build pays nothing for it.
type allocTracker struct {
	live *swiss.Map[uintptr, uint]
}

func newAllocTracker() allocTracker {
	return allocTracker{live: swiss.NewMap[uintptr, uint](16)}
}

func (t allocTracker) track(p unsafe.Pointer, order uint) {
	t.live.Put(uintptr(p), order)
}

func (t allocTracker) untrack(p unsafe.Pointer) (uint, bool) {
	addr := uintptr(p)
	order, ok := t.live.Get(addr)
	if !ok {
		panic(cerrors.Newf("buddy: release of untracked pointer %#x (double release or foreign pointer)", addr))
	}
	t.live.Delete(addr)
	return order, true
}
