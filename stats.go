package buddy

import "math"

// Statistics summarizes the allocator's current occupancy in O(1).
type Statistics struct {
	BlockCount      int
	AllocationCount int
	BlockBytes      int
	AllocationBytes int
}

func (s *Statistics) clear() {
	*s = Statistics{}
}

// DetailedStatistics adds free/allocation size extrema to Statistics, at
// the cost of one step per free block and per live allocation, counted
// from the allocator's per-order counters. Because the
// allocator only ever records a block's order (not the caller's original
// requested size), the min/max figures here are block sizes (1<<order),
// not requested sizes.
type DetailedStatistics struct {
	Statistics
	UnusedRangeCount   int
	AllocationSizeMin  int
	AllocationSizeMax  int
	UnusedRangeSizeMin int
	UnusedRangeSizeMax int
}

func (s *DetailedStatistics) clear() {
	s.Statistics.clear()
	s.UnusedRangeCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
	s.UnusedRangeSizeMin = math.MaxInt
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) addUnusedRange(size int) {
	s.UnusedRangeCount++
	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}
	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) addAllocation(size int) {
	s.AllocationCount++
	s.AllocationBytes += size
	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}
	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

// Statistics returns a cheap, O(1) summary of the allocator's occupancy.
func (a *Allocator) Statistics() Statistics {
	var s Statistics
	s.BlockCount = 1
	s.BlockBytes = int(uintptr(1) << a.maxOrder)
	for order := MinOrder; order <= a.maxOrder; order++ {
		idx := order - MinOrder
		s.AllocationCount += a.allocCount[idx]
		s.AllocationBytes += a.allocCount[idx] * (1 << order)
	}
	return s
}

// DetailedStatistics reports size extrema on top of Statistics, computed
// from the per-order free and allocated block counts without reading the
// free lists themselves. It is O(number of free blocks + live allocations).
func (a *Allocator) DetailedStatistics() DetailedStatistics {
	var s DetailedStatistics
	s.clear()
	s.BlockCount = 1
	s.BlockBytes = int(uintptr(1) << a.maxOrder)

	for order := MinOrder; order <= a.maxOrder; order++ {
		idx := order - MinOrder
		size := 1 << order
		for i := 0; i < a.allocCount[idx]; i++ {
			s.addAllocation(size)
		}
		for i := 0; i < a.freeCount[idx]; i++ {
			s.addUnusedRange(size)
		}
	}

	return s
}
