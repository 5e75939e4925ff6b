package buddy

import cerrors "github.com/cockroachdb/errors"

// Validate performs internal consistency checks across every free list,
// grounded on memutils/metadata/tlsf.go's Validate. It is O(number of free
// blocks) and intended for diagnostics and tests, not the hot path; when
// the allocator is functioning correctly it should never return an error.
func (a *Allocator) Validate() error {
	var freeBytes int

	for order := MinOrder; order <= a.maxOrder; order++ {
		idx := order - MinOrder

		count := 0
		for cur := a.freeListHeads[idx]; cur != nil; cur = readLink(cur) {
			count++
			if count > a.freeCount[idx] {
				return cerrors.Newf("buddy: free list for order %d is longer than its recorded count %d (likely cyclic)", order, a.freeCount[idx])
			}
		}
		if count != a.freeCount[idx] {
			return cerrors.Newf("buddy: free list for order %d has %d entries, expected %d", order, count, a.freeCount[idx])
		}

		freeBytes += count * (1 << order)
	}

	stats := a.Statistics()
	if freeBytes+stats.AllocationBytes != stats.BlockBytes {
		return cerrors.Newf("buddy: free bytes (%d) + allocated bytes (%d) != buffer size (%d)", freeBytes, stats.AllocationBytes, stats.BlockBytes)
	}

	return nil
}
