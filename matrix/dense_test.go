package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepgl/matrix"
)

// fill builds a 2×3 fixture
//
//	[1, 2, 3]
//	[4, 5, 6]
func fill(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{1, 2, 3}))
	require.NoError(t, m.SetRow(1, []float64{4, 5, 6}))

	return m
}

func TestNewDense_Validation(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "fresh matrix is zeroed")

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {2, -1}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestAtSet_Bounds(t *testing.T) {
	m := fill(t)

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At %v", idx)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrIndexOutOfBounds, "Set %v", idx)
	}
}

func TestRowView_AliasesStorage(t *testing.T) {
	m := fill(t)

	row := m.RowView(0)
	assert.Equal(t, []float64{1, 2, 3}, row)

	row[1] = -7
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -7.0, v, "writes through the view reach the matrix")

	assert.Panics(t, func() { m.RowView(2) })
	assert.Panics(t, func() { m.RowView(-1) })
}

func TestSetRow_Validation(t *testing.T) {
	m := fill(t)

	assert.ErrorIs(t, m.SetRow(2, []float64{0, 0, 0}), matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.SetRow(0, []float64{1, 2}), matrix.ErrDimensionMismatch)
}

func TestCol_IndependentCopy(t *testing.T) {
	m := fill(t)

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)

	col[0] = 99
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "column copies never alias")

	_, err = m.Col(3)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestCloneAndEqual(t *testing.T) {
	m := fill(t)
	cp := m.Clone()

	assert.True(t, m.Equal(cp))
	require.NoError(t, cp.Set(0, 0, -1))
	assert.False(t, m.Equal(cp), "clone is deep")

	other, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	assert.False(t, m.Equal(other), "shape mismatch is never equal")
	assert.False(t, m.Equal(nil))
}

func TestString(t *testing.T) {
	m := fill(t)
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}
