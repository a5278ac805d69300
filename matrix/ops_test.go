package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepgl/matrix"
)

func TestHStack(t *testing.T) {
	a := fill(t) // 2×3
	b, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetRow(0, []float64{7, 8}))
	require.NoError(t, b.SetRow(1, []float64{9, 10}))

	out, err := matrix.HStack(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, 5, out.Cols())
	assert.Equal(t, []float64{1, 2, 3, 7, 8}, out.RowView(0))
	assert.Equal(t, []float64{4, 5, 6, 9, 10}, out.RowView(1))

	// result owns its storage
	require.NoError(t, a.Set(0, 0, -1))
	v, err := out.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestHStack_Validation(t *testing.T) {
	a := fill(t)
	short, err := matrix.NewDense(3, 1)
	require.NoError(t, err)

	_, err = matrix.HStack(a, short)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.HStack(nil, a)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.HStack(a, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSelectColumns(t *testing.T) {
	m := fill(t)

	out, err := matrix.SelectColumns(m, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, 3, out.Cols())
	assert.Equal(t, []float64{3, 1, 3}, out.RowView(0), "order follows the selection, duplicates copy")
	assert.Equal(t, []float64{6, 4, 6}, out.RowView(1))
}

func TestSelectColumns_Validation(t *testing.T) {
	m := fill(t)

	_, err := matrix.SelectColumns(m, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.SelectColumns(nil, []int{0})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.SelectColumns(m, []int{0, 3})
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = matrix.SelectColumns(m, []int{-1})
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}
