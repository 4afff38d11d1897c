package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/tensorgraph/arena"
)

func newTestGraph() *Graph {
	return New(arena.NewBumpAllocator(0))
}

func TestGraph_AddTensor(t *testing.T) {
	g := newTestGraph()

	a := g.AddTensor(Shape{2, 3}, Float32)
	b := g.AddTensor(Shape{3, 4}, Float32)

	assert.NotEqual(t, a.FUID(), b.FUID())
	assert.Len(t, g.Tensors(), 2)
}

func TestGraph_AddOperator_WiresConnectivity(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op, y, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	assert.Equal(t, OpUnary, op.OpKind())
	assert.Same(t, op, y.Source())
	assert.Contains(t, x.Targets(), op)
	assert.True(t, g.CheckValid())
}

func TestGraph_ChainedOperators_PredecessorSuccessorSymmetry(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op1, y, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	op2, _, err := g.AddUnary(Sigmoid, y)
	require.NoError(t, err)

	assert.Contains(t, op2.Predecessors(), op1)
	assert.Contains(t, op1.Successors(), op2)
	assert.True(t, g.CheckValid())
}

func TestGraph_RemoveOperator_DetachesNeighbours(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op1, y, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	op2, _, err := g.AddUnary(Sigmoid, y)
	require.NoError(t, err)

	require.NoError(t, g.RemoveOperator(op2))
	assert.Empty(t, op1.Successors())
	assert.NotContains(t, g.Operators(), op2)
}

func TestGraph_RemoveOperator_NotOwned(t *testing.T) {
	g1 := newTestGraph()
	g2 := newTestGraph()

	x := g1.AddTensor(Shape{2}, Float32)
	op, _, err := g1.AddUnary(Relu, x)
	require.NoError(t, err)

	err = g2.RemoveOperator(op)
	require.ErrorIs(t, err, ErrNotOwned)
}

func TestGraph_RemoveTensor_RequiresNoEdges(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op, y, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	err = g.RemoveTensor(y)
	require.ErrorIs(t, err, ErrTensorInUse)

	require.NoError(t, g.RemoveOperator(op))
	y.source = nil
	require.NoError(t, g.RemoveTensor(y))
}

func TestGraph_ReplaceInput(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op, _, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	x2 := g.AddTensor(Shape{2, 3}, Float32)
	require.NoError(t, g.ReplaceInput(op, x, x2))
	assert.Equal(t, []*Tensor{x2}, op.Inputs())
}

func TestGraph_CheckValid_DetectsDanglingTensor(t *testing.T) {
	g := newTestGraph()
	g.AddTensor(Shape{1}, Float32)

	assert.Panics(t, func() { g.CheckValid() })
}

func TestGraph_String_ListsTensorsAndOperators(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3}, Float32)
	op, _, err := g.AddUnary(Relu, x)
	require.NoError(t, err)

	s := g.String()
	assert.Contains(t, s, "Graph Tensors:")
	assert.Contains(t, s, "Graph Operators:")
	assert.Contains(t, s, "Unary")
	_ = op
}
