package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeInfer_UpdatesChangedShape(t *testing.T) {
	g := newTestGraph()

	a := g.AddTensor(Shape{1, 3, 4}, Float32)
	b := g.AddTensor(Shape{1, 4, 5}, Float32)

	_, out, err := g.AddMatMul(a, b, false, false)
	require.NoError(t, err)

	require.True(t, g.TopoSort())

	// Force the operand shape to change so ShapeInfer has something to
	// recompute, the way an upstream rewrite would.
	a.setShape(Shape{1, 3, 8})
	b.setShape(Shape{1, 8, 6})

	g.ShapeInfer()
	assert.Equal(t, Shape{1, 3, 6}, out.Dims())
}

func TestShapeInfer_PanicsOnInvalidShape(t *testing.T) {
	g := newTestGraph()

	a := g.AddTensor(Shape{1, 3, 4}, Float32)
	b := g.AddTensor(Shape{1, 4, 5}, Float32)

	_, _, err := g.AddMatMul(a, b, false, false)
	require.NoError(t, err)

	require.True(t, g.TopoSort())

	a.setShape(Shape{1, 3, 9})

	assert.Panics(t, func() { g.ShapeInfer() })
}
