package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// TopoSort reorders the graph's operators so that every operator
// follows all producers of its inputs, using gonum's DFS-based
// topological sort over the operator adjacency (preds/succs) the graph
// maintains eagerly. It returns false, leaving ops untouched, if the
// current operator set contains a cycle. The result is cached: TopoSort
// is a no-op if the graph is already known to be sorted, and any
// structural mutation clears that cache.
func (g *Graph) TopoSort() bool {
	if g.sorted {
		return true
	}

	if len(g.ops) == 0 {
		g.sorted = true

		return true
	}

	dg := simple.NewDirectedGraph()

	for i := range g.ops {
		dg.AddNode(simple.Node(int64(i)))
	}

	for i, op := range g.ops {
		for _, pred := range op.preds.slice() {
			j, ok := g.opIndex[pred.guid]
			if !ok {
				continue
			}

			dg.SetEdge(simple.Edge{F: simple.Node(int64(j)), T: simple.Node(int64(i))})
		}
	}

	order, err := topo.Sort(dg)
	if err != nil {
		return false
	}

	sortedOps := make([]*Operator, len(order))
	for i, n := range order {
		sortedOps[i] = g.ops[n.ID()]
	}

	g.ops = sortedOps

	g.opIndex = make(map[uint64]int, len(g.ops))
	for i, op := range g.ops {
		g.opIndex[op.guid] = i
	}

	g.sorted = true

	return true
}
