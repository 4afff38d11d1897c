// Package graph implements the computation-graph core of a neural
// network inference runtime: tensors and operators wired into a
// doubly-linked DAG, shape and dtype inference, a redundant-op /
// operator-fusion rewrite pass, and memory planning over a single
// arena.
package graph

import (
	"fmt"
	"strings"

	"github.com/zerfoo/tensorgraph/arena"
)

// Graph owns a set of tensors and a set of operators and is the sole
// mutator of both: tensors and operators are created through Graph
// factories and destroyed only by being removed from their owning
// Graph. The sorted flag records whether ops is currently in a valid
// topological order; every structural mutation clears it.
type Graph struct {
	tensors []*Tensor
	ops     []*Operator

	tensorIndex map[uint64]int
	opIndex     map[uint64]int

	alloc arena.Allocator

	sorted bool

	nextFUID uint64
	nextGUID uint64
}

// New creates an empty Graph backed by alloc for memory planning.
func New(alloc arena.Allocator) *Graph {
	return &Graph{
		tensorIndex: make(map[uint64]int),
		opIndex:     make(map[uint64]int),
		alloc:       alloc,
	}
}

func (g *Graph) nextFUIDVal() uint64 {
	g.nextFUID++

	return g.nextFUID - 1
}

func (g *Graph) nextGUIDVal() uint64 {
	g.nextGUID++

	return g.nextGUID - 1
}

// AddTensor creates a new tensor owned by this graph with no producer
// and no consumers. The caller is expected to wire it into an operator
// shortly after; an unconnected tensor violates CheckValid's invariant
// that every tensor has at least one edge.
func (g *Graph) AddTensor(shape Shape, dtype DataType) *Tensor {
	t := newTensor(g.nextFUIDVal(), shape, dtype)
	g.tensorIndex[t.fuid] = len(g.tensors)
	g.tensors = append(g.tensors, t)

	return t
}

// Tensors returns every tensor currently owned by the graph.
func (g *Graph) Tensors() []*Tensor {
	out := make([]*Tensor, len(g.tensors))
	copy(out, g.tensors)

	return out
}

// Operators returns every operator currently owned by the graph, in its
// current (not necessarily topological) order.
func (g *Graph) Operators() []*Operator {
	out := make([]*Operator, len(g.ops))
	copy(out, g.ops)

	return out
}

func (g *Graph) ownsTensor(t *Tensor) bool {
	if t == nil {
		return false
	}

	_, ok := g.tensorIndex[t.fuid]

	return ok
}

func (g *Graph) ownsOperator(op *Operator) bool {
	if op == nil {
		return false
	}

	_, ok := g.opIndex[op.guid]

	return ok
}

func (g *Graph) mustOwnTensor(t *Tensor) error {
	if !g.ownsTensor(t) {
		return fmt.Errorf("%w: tensor fuid=%d", ErrNotOwned, tensorFUIDOrZero(t))
	}

	return nil
}

func tensorFUIDOrZero(t *Tensor) uint64 {
	if t == nil {
		return 0
	}

	return t.fuid
}

// addOperatorAndConnect appends op to the operator list and eagerly
// wires producer/consumer and predecessor/successor edges, per §4.1.
// Every exported AddXxx operator factory calls this after validating
// and constructing its attributes and output shapes.
func (g *Graph) addOperatorAndConnect(op *Operator) {
	g.sorted = false

	g.opIndex[op.guid] = len(g.ops)
	g.ops = append(g.ops, op)

	for _, in := range op.inputs {
		if in == nil {
			continue
		}

		in.addTarget(op)

		if pred := in.source; pred != nil {
			pred.succs.add(op)
			op.preds.add(pred)
		}
	}

	for _, out := range op.outputs {
		if out == nil {
			continue
		}

		out.source = op

		for _, succ := range out.targets.slice() {
			succ.preds.add(op)
			op.succs.add(succ)
		}
	}
}

// RemoveOperator detaches op from its neighbours' predecessor/successor
// sets and drops it from the graph's operator list. Tensor wiring
// (source/targets) is not touched; callers performing graph rewrites are
// responsible for repairing tensor links before calling this, per §4.1.
func (g *Graph) RemoveOperator(op *Operator) error {
	if err := g.mustOwnOperator(op); err != nil {
		return err
	}

	for _, pred := range op.preds.slice() {
		pred.succs.remove(op)
	}

	for _, succ := range op.succs.slice() {
		succ.preds.remove(op)
	}

	idx, ok := g.opIndex[op.guid]
	if !ok {
		return fmt.Errorf("%w: operator guid=%d", ErrNotOwned, op.guid)
	}

	g.ops = append(g.ops[:idx], g.ops[idx+1:]...)
	delete(g.opIndex, op.guid)

	for guid, i := range g.opIndex {
		if i > idx {
			g.opIndex[guid] = i - 1
		}
	}

	g.sorted = false

	return nil
}

func (g *Graph) mustOwnOperator(op *Operator) error {
	if !g.ownsOperator(op) {
		return fmt.Errorf("%w: operator guid=%d", ErrNotOwned, guidOrZero(op))
	}

	return nil
}

func guidOrZero(op *Operator) uint64 {
	if op == nil {
		return 0
	}

	return op.guid
}

// RemoveTensor removes t from the graph's tensor list. t must already
// have no producer and no consumers; callers performing graph rewrites
// detach t from its neighbours before calling this.
func (g *Graph) RemoveTensor(t *Tensor) error {
	if err := g.mustOwnTensor(t); err != nil {
		return err
	}

	if t.source != nil || t.targets.len() != 0 {
		return fmt.Errorf("%w: fuid=%d", ErrTensorInUse, t.fuid)
	}

	idx, ok := g.tensorIndex[t.fuid]
	if !ok {
		return fmt.Errorf("%w: tensor fuid=%d", ErrNotOwned, t.fuid)
	}

	g.tensors = append(g.tensors[:idx], g.tensors[idx+1:]...)
	delete(g.tensorIndex, t.fuid)

	for fuid, i := range g.tensorIndex {
		if i > idx {
			g.tensorIndex[fuid] = i - 1
		}
	}

	return nil
}

// ReplaceInput substitutes old with replacement in op's input list,
// preserving order. The operator's predecessor set and the tensors'
// target sets are not touched here; the rewrite rule driving the
// substitution maintains those directly since it alone knows which
// edges are being retired versus redirected.
func (g *Graph) ReplaceInput(op *Operator, old, replacement *Tensor) error {
	if err := g.mustOwnOperator(op); err != nil {
		return err
	}

	if err := g.mustOwnTensor(replacement); err != nil {
		return err
	}

	op.replaceInput(old, replacement)

	g.sorted = false

	return nil
}

// CheckValid enforces every structural invariant from §3 and panics
// with a *structuralViolation on the first one it finds, per the
// StructuralViolation error policy (a fatal assertion, not a
// recoverable error). It returns true when every invariant holds.
func (g *Graph) CheckValid() bool {
	seenFUID := make(map[uint64]bool, len(g.tensors))

	for _, t := range g.tensors {
		if t.source == nil && t.targets.len() == 0 {
			panicStructural("tensor fuid=%d has neither a producer nor a consumer", t.fuid)
		}

		if t.source != nil && !g.ownsOperator(t.source) {
			panicStructural("tensor fuid=%d source guid=%d is not owned by this graph", t.fuid, t.source.guid)
		}

		for _, c := range t.targets.slice() {
			if !g.ownsOperator(c) {
				panicStructural("tensor fuid=%d target guid=%d is not owned by this graph", t.fuid, c.guid)
			}

			if !tensorInList(c.inputs, t) {
				panicStructural("tensor fuid=%d lists consumer guid=%d that does not list it as an input", t.fuid, c.guid)
			}
		}

		if seenFUID[t.fuid] {
			panicStructural("duplicate FUID %d", t.fuid)
		}

		seenFUID[t.fuid] = true
	}

	for _, op := range g.ops {
		for _, in := range op.inputs {
			if in != nil && !g.ownsTensor(in) {
				panicStructural("operator guid=%d input fuid=%d is not owned by this graph", op.guid, in.fuid)
			}

			if in != nil && in.source != nil && !op.preds.has(in.source) {
				panicStructural("operator guid=%d input fuid=%d has producer guid=%d missing from its predecessors", op.guid, in.fuid, in.source.guid)
			}
		}

		for _, out := range op.outputs {
			if out != nil && !g.ownsTensor(out) {
				panicStructural("operator guid=%d output fuid=%d is not owned by this graph", op.guid, out.fuid)
			}
		}

		for _, pred := range op.preds.slice() {
			if !pred.succs.has(op) {
				panicStructural("operator guid=%d predecessor guid=%d is missing the symmetric successor edge", op.guid, pred.guid)
			}

			feeds := false
			for _, in := range op.inputs {
				if in != nil && in.source == pred {
					feeds = true
				}
			}

			if !feeds {
				panicStructural("operator guid=%d predecessor guid=%d produces none of its inputs", op.guid, pred.guid)
			}
		}

		for _, succ := range op.succs.slice() {
			if !succ.preds.has(op) {
				panicStructural("operator guid=%d successor guid=%d is missing the symmetric predecessor edge", op.guid, succ.guid)
			}
		}
	}

	return true
}

func tensorInList(list []*Tensor, t *Tensor) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}

	return false
}

// String renders every tensor and every operator, with each operator's
// predecessor and successor GUIDs, for diagnostic use. The exact format
// is unspecified by the core's contract beyond that coverage.
func (g *Graph) String() string {
	var b strings.Builder

	b.WriteString("Graph Tensors:\n")

	for _, t := range g.tensors {
		fmt.Fprintf(&b, "  T%d dims=%v dtype=%s", t.fuid, []int(t.shape), t.dtype)

		if t.source != nil {
			fmt.Fprintf(&b, " source=%d", t.source.guid)
		}

		targets := make([]uint64, 0, t.targets.len())
		for _, c := range t.targets.slice() {
			targets = append(targets, c.guid)
		}

		fmt.Fprintf(&b, " targets=%v\n", targets)
	}

	b.WriteString("Graph Operators:\n")

	for _, op := range g.ops {
		preds := guidsOf(op.preds.slice())
		succs := guidsOf(op.succs.slice())
		fmt.Fprintf(&b, "  OP %d kind=%s pred=%v succ=%v attrs=%v\n", op.guid, op.kind, preds, succs, op.Attributes())
	}

	return b.String()
}

func guidsOf(ops []*Operator) []uint64 {
	out := make([]uint64, len(ops))
	for i, op := range ops {
		out[i] = op.guid
	}

	return out
}
