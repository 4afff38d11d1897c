package graph

import "github.com/zerfoo/tensorgraph/arena"

// NewWithBumpArena creates a Graph backed by a bump allocator, the
// simplest conforming Allocator for callers that don't need a custom
// packing policy.
func NewWithBumpArena() *Graph {
	return New(arena.NewBumpAllocator(0))
}
