// Package arena provides the allocator abstraction used to bind tensor
// storage to offsets within a single contiguous byte region.
//
// The graph package depends only on the Allocator interface; a backend
// is free to substitute a best-fit or lifetime-aware packer without the
// graph needing to change. The BumpAllocator here is the simplest
// conforming implementation: it hands out monotonically increasing
// offsets and never reclaims them.
package arena

import (
	"fmt"
	"unsafe"
)

// Allocator is responsible for carving byte offsets out of a single
// backing region and for exposing a base pointer once planning is done.
type Allocator interface {
	// Alloc reserves bytes contiguous bytes and returns the offset, in
	// bytes, at which the reservation begins.
	Alloc(bytes int) (int, error)
	// BasePtr returns a pointer into a region at least as large as the
	// sum of bytes handed out so far. It is only meaningful to call once
	// every tensor that needs storage has been allocated.
	BasePtr() unsafe.Pointer
	// Info returns a short diagnostic summary of the allocator's state.
	Info() string
}

// ErrAllocatorExhausted is returned when an allocator cannot satisfy a
// request, e.g. because it has a fixed-size backing region.
var ErrAllocatorExhausted = fmt.Errorf("arena: allocator exhausted")

// BumpAllocator is a bump-pointer Allocator: every call to Alloc grows
// the backing slice and returns the offset immediately preceding the
// growth. Nothing is ever freed; the arena lives exactly as long as the
// graph that owns it.
type BumpAllocator struct {
	buf   []byte
	limit int // 0 means unbounded
}

// NewBumpAllocator creates a BumpAllocator. If limit is positive, Alloc
// fails with ErrAllocatorExhausted once the backing region would have to
// grow past limit bytes.
func NewBumpAllocator(limit int) *BumpAllocator {
	return &BumpAllocator{limit: limit}
}

// Alloc grows the arena by bytes and returns the start offset of the new
// region. A request for a negative size is rejected.
func (a *BumpAllocator) Alloc(bytes int) (int, error) {
	if bytes < 0 {
		return 0, fmt.Errorf("arena: allocation size cannot be negative: %d", bytes)
	}

	offset := len(a.buf)
	if a.limit > 0 && offset+bytes > a.limit {
		return 0, ErrAllocatorExhausted
	}

	a.buf = append(a.buf, make([]byte, bytes)...)

	return offset, nil
}

// BasePtr returns a pointer to the start of the backing slice. Calling
// Alloc after BasePtr may reallocate the slice and invalidate any
// pointer previously derived from it, so planning must be finished
// before BasePtr is consulted.
func (a *BumpAllocator) BasePtr() unsafe.Pointer {
	if len(a.buf) == 0 {
		return nil
	}

	return unsafe.Pointer(&a.buf[0])
}

// Info reports the current arena size.
func (a *BumpAllocator) Info() string {
	return fmt.Sprintf("BumpAllocator{used=%d, limit=%d}", len(a.buf), a.limit)
}
