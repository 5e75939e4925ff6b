package buddy

import "golang.org/x/exp/slog"

// LogAllocations writes one structured log line per order that currently
// has live allocations, grounded on the style of
// memutils/metadata/tlsf.go's DebugLogAllAllocations. It is purely a
// diagnostic aid: Allocate and Release never call it.
func (a *Allocator) LogAllocations(logger *slog.Logger) {
	for order := MinOrder; order <= a.maxOrder; order++ {
		idx := order - MinOrder
		if a.allocCount[idx] == 0 {
			continue
		}

		logger.Info("buddy allocation order",
			"order", order,
			"blockSize", 1<<order,
			"count", a.allocCount[idx],
		)
	}
}
