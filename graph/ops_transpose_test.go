package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTranspose_Basic(t *testing.T) {
	g := newTestGraph()

	x := g.AddTensor(Shape{2, 3, 4}, Float32)
	op, out, err := g.AddTranspose(x, []int{0, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 4, 3}, out.Dims())
	assert.Equal(t, []int{0, 2, 1}, op.Perm())
}

func TestAddTranspose_InvalidPermutation(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{2, 3, 4}, Float32)

	_, _, err := g.AddTranspose(x, []int{0, 1})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestOperator_Perm_ReturnsCopy(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{2, 3}, Float32)

	op, _, err := g.AddTranspose(x, []int{1, 0})
	require.NoError(t, err)

	perm := op.Perm()
	perm[0] = 99
	assert.Equal(t, []int{1, 0}, op.Perm())
}
