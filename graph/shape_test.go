package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestShape_Clone_Independent(t *testing.T) {
	s := Shape{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	assert.Equal(t, 1, s[0])
}

func TestShape_Permute(t *testing.T) {
	s := Shape{2, 3, 4}

	out, err := s.permute([]int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4, 3}, out)
}

func TestShape_Permute_InvalidLength(t *testing.T) {
	_, err := Shape{2, 3, 4}.permute([]int{0, 1})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShape_Permute_NotAPermutation(t *testing.T) {
	_, err := Shape{2, 3, 4}.permute([]int{0, 0, 1})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestComposePermutation_Identity(t *testing.T) {
	perm := []int{0, 2, 1}
	composed := composePermutation(perm, perm)
	assert.True(t, isIdentityPermutation(composed))
}

func TestComposePermutation_NotIdentity(t *testing.T) {
	a := []int{0, 2, 1}
	b := []int{1, 0, 2}
	composed := composePermutation(a, b)
	assert.False(t, isIdentityPermutation(composed))
}

func TestIsLastTwoSwap(t *testing.T) {
	assert.True(t, isLastTwoSwap([]int{0, 2, 1}))
	assert.False(t, isLastTwoSwap([]int{1, 0, 2}))
	assert.False(t, isLastTwoSwap([]int{0, 1, 2}))
}

func TestSwapLastTwo(t *testing.T) {
	assert.Equal(t, Shape{1, 4, 3}, Shape{1, 3, 4}.swapLastTwo())
}
