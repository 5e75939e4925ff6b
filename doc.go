// Package buddy implements a binary buddy allocator over a single, fixed,
// contiguous, power-of-two byte buffer owned by the Allocator value.
//
// There is no out-of-line metadata: every allocated block's order is
// stashed in the single byte immediately preceding the address returned to
// the caller, and every free block's free-list link is stored in the
// block's own first bytes. The managed buffer, the free-list heads, and
// the metadata pad byte are all acquired exactly once, at construction,
// and never resized.
//
// This package performs no locking and no atomic operations. Every
// Allocator value must be used from a single goroutine at a time, or
// externally synchronized by the caller.
package buddy
