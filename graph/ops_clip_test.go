package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClip_ShapePassthrough(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{2, 3, 4}, Float32)

	minVal := 0.0
	maxVal := 6.0

	op, out, err := g.AddClip(x, &minVal, &maxVal)
	require.NoError(t, err)

	assert.Equal(t, x.Dims(), out.Dims())
	assert.Equal(t, &minVal, op.Min())
	assert.Equal(t, &maxVal, op.Max())
}

func TestAddClip_NilBounds(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{5}, Float32)

	op, out, err := g.AddClip(x, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, op.Min())
	assert.Nil(t, op.Max())
	assert.Equal(t, x.Dims(), out.Dims())
}

func TestAddClip_RankOneAccepted(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{7}, Float32)

	_, out, err := g.AddClip(x, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rank())
}
