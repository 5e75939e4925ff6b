package buddy

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// Allocator serves variable-size allocations out of a single fixed,
// contiguous, power-of-two byte buffer that it owns. The metadata pad byte
// and the managed buffer itself live in one backing slice acquired exactly
// once, at construction; the free-list heads and per-order counters are
// small separate slices, also allocated once at construction.
//
// An Allocator is not safe for concurrent use; callers touching the same
// instance from more than one goroutine must provide their own mutual
// exclusion.
type Allocator struct {
	raw       []byte
	base      unsafe.Pointer
	maxOrder  uint
	alignment uint

	freeListHeads []unsafe.Pointer
	freeCount     []int
	allocCount    []int

	tracker allocTracker
}

// New constructs an Allocator managing a buffer of 1<<maxPower bytes,
// aligned to the platform's natural pointer width. maxPower must be in
// [MinOrder, 31].
func New(maxPower uint) *Allocator {
	return NewAligned(maxPower, uint(pointerSize))
}

// NewAligned constructs an Allocator managing a buffer of 1<<maxPower
// bytes whose base address is aligned to alignment, which must be a power
// of two. maxPower must be in [MinOrder, 31].
func NewAligned(maxPower uint, alignment uint) *Allocator {
	if err := checkPow2(alignment, "alignment"); err != nil {
		panic(err)
	}
	if maxPower < MinOrder || maxPower > 31 {
		panic(cerrors.Wrapf(OrderRangeError, "maxPower %d not in [%d, 31]", maxPower, MinOrder))
	}

	bufSize := uintptr(1) << maxPower

	// Over-allocate so there is room both to align the managed buffer's
	// base address and to keep at least one byte before it for the
	// metadata pad byte: the block at offset 0 has no preceding block to
	// donate its order byte to, so the allocator owns one of its own.
	raw := make([]byte, bufSize+uintptr(alignment)+1)

	rawBase := uintptr(unsafe.Pointer(&raw[0]))
	base := alignUp(rawBase+1, alignment)

	a := &Allocator{
		raw:       raw,
		base:      unsafe.Pointer(base),
		maxOrder:  maxPower,
		alignment: alignment,
	}

	listCount := int(maxPower-MinOrder) + 1
	a.freeListHeads = make([]unsafe.Pointer, listCount)
	a.freeCount = make([]int, listCount)
	a.allocCount = make([]int, listCount)
	a.tracker = newAllocTracker()

	topIdx := maxPower - MinOrder
	writeLink(a.base, nil)
	a.freeListHeads[topIdx] = a.base
	a.freeCount[topIdx] = 1

	return a
}

// MaxOrder returns the order of the single block spanning the whole
// managed buffer, i.e. the maxPower this Allocator was constructed with.
func (a *Allocator) MaxOrder() uint { return a.maxOrder }

// Alignment returns the alignment the managed buffer's base address was
// constructed with.
func (a *Allocator) Alignment() uint { return a.alignment }

// Allocate returns a pointer into the managed buffer at which the caller
// may use size bytes, or nil on failure. Failure never mutates allocator
// state. The block chosen is always the smallest power-of-two block that
// can hold size bytes plus the caller's own order byte, and never smaller
// than order MinOrder.
func (a *Allocator) Allocate(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}

	order := ceilLog2(uint(size) + 1)
	if order < MinOrder {
		order = MinOrder
	}
	if order > a.maxOrder {
		return nil
	}

	k := order
	for k <= a.maxOrder && a.freeListHeads[k-MinOrder] == nil {
		k++
	}
	if k > a.maxOrder {
		return nil
	}

	block := a.popFree(k)

	// Split down to the requested order, always keeping the lower-address
	// half for the caller and freeing the upper half. This is deliberate
	// and observable: it makes buddy computation and split-policy tests
	// predictable.
	for k > order {
		k--
		buddy := buddyOf(a.base, offsetOf(a.base, block), k)
		a.pushFree(k, buddy)
	}

	writeOrder(block, order)
	a.allocCount[order-MinOrder]++
	a.tracker.track(block, order)

	return block
}

// Release returns a block to the free pool, coalescing with its buddy
// iteratively up to MaxOrder for as long as the buddy is itself free.
// Release on a nil pointer is a no-op. Releasing a pointer that was not
// returned by Allocate on this Allocator, or releasing the same pointer
// twice, is undefined in the default build; the debug_buddyalloc build
// tag turns both into a panic instead.
func (a *Allocator) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	a.tracker.untrack(p)

	order := readOrder(p)
	a.allocCount[order-MinOrder]--

	block := p
	for order < a.maxOrder {
		offset := offsetOf(a.base, block)
		buddy := buddyOf(a.base, offset, order)

		if !a.removeFree(order, buddy) {
			break
		}

		if uintptr(buddy) < uintptr(block) {
			block = buddy
		}
		order++
	}

	a.pushFree(order, block)
}

func (a *Allocator) popFree(order uint) unsafe.Pointer {
	idx := order - MinOrder
	block := a.freeListHeads[idx]
	a.freeListHeads[idx] = readLink(block)
	a.freeCount[idx]--
	return block
}

func (a *Allocator) pushFree(order uint, block unsafe.Pointer) {
	idx := order - MinOrder
	writeLink(block, a.freeListHeads[idx])
	a.freeListHeads[idx] = block
	a.freeCount[idx]++
}

// removeFree unlinks target from free-list order if present, reporting
// whether it found it. This is a linear walk: finding a specific buddy
// among same-order free blocks has no cheaper answer without an
// out-of-line index, which the in-band design deliberately avoids.
func (a *Allocator) removeFree(order uint, target unsafe.Pointer) bool {
	idx := order - MinOrder

	var prev unsafe.Pointer
	cur := a.freeListHeads[idx]
	for cur != nil {
		if cur == target {
			next := readLink(cur)
			if prev == nil {
				a.freeListHeads[idx] = next
			} else {
				writeLink(prev, next)
			}
			a.freeCount[idx]--
			return true
		}
		prev = cur
		cur = readLink(cur)
	}

	return false
}
