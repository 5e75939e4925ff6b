package buddy

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// WriteJSON emits a summary of per-order free-list occupancy and overall
// statistics, grounded on memutils/metadata/linear.go's BlockJsonData.
func (a *Allocator) WriteJSON(w *jwriter.Writer) {
	stats := a.Statistics()

	obj := w.Object()
	obj.Name("totalBytes").Int(stats.BlockBytes)
	obj.Name("allocatedBytes").Int(stats.AllocationBytes)
	obj.Name("allocationCount").Int(stats.AllocationCount)

	orders := obj.Name("orders").Array()
	for order := MinOrder; order <= a.maxOrder; order++ {
		idx := order - MinOrder
		if a.allocCount[idx] == 0 && a.freeCount[idx] == 0 {
			continue
		}

		o := orders.Object()
		o.Name("order").Int(int(order))
		o.Name("blockSize").Int(1 << order)
		o.Name("free").Int(a.freeCount[idx])
		o.Name("allocated").Int(a.allocCount[idx])
		o.End()
	}
	orders.End()

	obj.End()
}
