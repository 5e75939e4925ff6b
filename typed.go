package buddy

import "unsafe"

// AllocateBytes wraps Allocate, returning a Go slice of exactly size bytes
// backed by the managed buffer. It returns nil under exactly the same
// conditions Allocate returns nil for.
func (a *Allocator) AllocateBytes(size int) []byte {
	p := a.Allocate(size)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}

// ReleaseBytes releases a slice obtained from AllocateBytes. A nil or
// empty slice is a no-op.
func (a *Allocator) ReleaseBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	a.Release(unsafe.Pointer(&b[0]))
}

// Alloc allocates space for a single value of type T, returning a typed
// pointer into the managed buffer. The memory is not zeroed. Grounded on
// other_examples/pboyd-malloc__malloc.go's generic Malloc[T].
func Alloc[T any](a *Allocator) *T {
	var zero T
	p := a.Allocate(int(unsafe.Sizeof(zero)))
	if p == nil {
		return nil
	}
	return (*T)(p)
}

// Free releases a pointer obtained from Alloc[T]. A nil pointer is a
// no-op.
func Free[T any](a *Allocator, p *T) {
	if p == nil {
		return
	}
	a.Release(unsafe.Pointer(p))
}
