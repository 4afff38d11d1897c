package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferCastDType_KnownKinds(t *testing.T) {
	dt, err := InferCastDType(CastFloat2Int32)
	require.NoError(t, err)
	assert.Equal(t, Int32, dt)

	dt, err = InferCastDType(CastInt642Float)
	require.NoError(t, err)
	assert.Equal(t, Float32, dt)
}

func TestInferCastDType_Unknown(t *testing.T) {
	_, err := InferCastDType(CastKind("NotARealCast"))
	require.ErrorIs(t, err, ErrUnsupportedCast)
}

func TestAddCast_SetsOutputDType(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{2, 3}, Float32)

	op, out, err := g.AddCast(x, CastFloat2Int32)
	require.NoError(t, err)

	assert.Equal(t, Int32, out.DType())
	assert.Equal(t, x.Dims(), out.Dims())
	assert.Equal(t, CastFloat2Int32, op.CastKind())
}

func TestAddCast_UnknownKind_Fails(t *testing.T) {
	g := newTestGraph()
	x := g.AddTensor(Shape{2}, Float32)

	_, _, err := g.AddCast(x, CastKind("bogus"))
	require.ErrorIs(t, err, ErrUnsupportedCast)
}
