package graph

import "unsafe"

// DataMalloc plans memory for every tensor currently in the graph: each
// tensor, visited in creation order, is given a byte offset from the
// graph's arena sized to its Bytes(); once every tensor has an offset,
// the arena's base pointer is fetched once and bound into every
// tensor's Storage alongside its offset and size.
//
// Its precondition, like ShapeInfer and Optimize, is that TopoSort last
// returned true; a cyclic graph has no well-defined tensor lifetimes to
// plan around.
func (g *Graph) DataMalloc() {
	if !g.sorted {
		panic("graph: DataMalloc called without a prior successful TopoSort")
	}

	offsets := make([]int, len(g.tensors))

	for i, t := range g.tensors {
		offset, err := g.alloc.Alloc(t.Bytes())
		if err != nil {
			panic(err)
		}

		offsets[i] = offset
	}

	base := g.alloc.BasePtr()

	for i, t := range g.tensors {
		t.storage = &Storage{
			Base:   uintptrOf(base),
			Offset: offsets[i],
			Bytes:  t.Bytes(),
		}
	}
}

func uintptrOf(p unsafe.Pointer) uintptr {
	return uintptr(p)
}
