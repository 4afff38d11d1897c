package graph

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when an operator's operand shapes are
// incompatible with its inference rule, e.g. MatMul inner dimensions
// that disagree once trans flags are applied.
var ErrShapeMismatch = errors.New("graph: shape mismatch")

// ErrUnsupportedCast is returned when a Cast operator names a CastKind
// absent from the dtype lookup table.
var ErrUnsupportedCast = errors.New("graph: unsupported cast kind")

// ErrCycle names the Cycle error kind: no valid topological order exists
// for the current operator set. TopoSort reports a cycle by returning
// false and does not return this error.
var ErrCycle = errors.New("graph: cycle detected")

// ErrNotOwned is returned when a tensor or operator referenced by a
// construction or mutation call does not belong to the graph it is
// being wired into.
var ErrNotOwned = errors.New("graph: tensor or operator not owned by this graph")

// ErrTensorInUse is returned by RemoveTensor when the tensor still has
// a producer or a consumer.
var ErrTensorInUse = errors.New("graph: tensor still has a producer or consumer")

// structuralViolation marks a broken §3 invariant. CheckValid treats
// every such violation as a programming error and panics rather than
// returning an error, per the spec's StructuralViolation policy.
type structuralViolation struct {
	msg string
}

func (e *structuralViolation) Error() string {
	return "graph: structural violation: " + e.msg
}

func panicStructural(format string, args ...any) {
	panic(&structuralViolation{msg: fmt.Sprintf(format, args...)})
}
