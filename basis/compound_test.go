package basis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nodalflow/spectral/utils"
)

func testSubBases(t *testing.T) []Basis {
	t.Helper()
	xb1, err := NewChebyshev("x1", 16, Interval{Lo: 0, Hi: 2}, 1)
	require.NoError(t, err)
	xb2, err := NewChebyshev("x2", 32, Interval{Lo: 2, Hi: 8}, 1)
	require.NoError(t, err)
	xb3, err := NewChebyshev("x3", 16, Interval{Lo: 8, Hi: 10}, 1)
	require.NoError(t, err)
	return []Basis{xb1, xb2, xb3}
}

func TestNewCompoundBasis(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {
		c, err := NewCompoundBasis("x", testSubBases(t))
		require.NoError(t, err)
		require.Equal(t, "x", c.Name())
		require.Equal(t, Interval{Lo: 0, Hi: 10}, c.Interval())
		require.Equal(t, 64, c.Size())
		require.Len(t, c.SubBases(), 3)
	})

	t.Run("Gap", func(t *testing.T) {
		b1, err := NewChebyshev("x1", 16, Interval{Lo: 0, Hi: 2}, 1)
		require.NoError(t, err)
		b2, err := NewChebyshev("x2", 32, Interval{Lo: 3, Hi: 8}, 1)
		require.NoError(t, err)
		_, err = NewCompoundBasis("x", []Basis{b1, b2})
		require.ErrorIs(t, err, ErrValidation)
		require.ErrorContains(t, err, "gap between sub-bases 0 and 1")
	})

	t.Run("Overlap", func(t *testing.T) {
		b1, err := NewChebyshev("x1", 16, Interval{Lo: 0, Hi: 3}, 1)
		require.NoError(t, err)
		b2, err := NewChebyshev("x2", 32, Interval{Lo: 2, Hi: 8}, 1)
		require.NoError(t, err)
		_, err = NewCompoundBasis("x", []Basis{b1, b2})
		require.ErrorIs(t, err, ErrValidation)
		require.ErrorContains(t, err, "overlap between sub-bases 0 and 1")
	})

	t.Run("TooFewSubBases", func(t *testing.T) {
		b1, err := NewChebyshev("x1", 16, Interval{Lo: 0, Hi: 2}, 1)
		require.NoError(t, err)
		_, err = NewCompoundBasis("x", []Basis{b1})
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewCompoundBasis("", testSubBases(t))
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestCompoundGrid(t *testing.T) {

	c, err := NewCompoundBasis("x", testSubBases(t))
	require.NoError(t, err)

	t.Run("Concatenation", func(t *testing.T) {
		g, err := c.Grid(1)
		require.NoError(t, err)
		require.Len(t, g, 64)
		require.True(t, utils.IsNonDecreasing(g))
		require.GreaterOrEqual(t, g[0], 0.0)
		require.LessOrEqual(t, g[len(g)-1], 10.0)

		// interior sub-families never touch their boundaries, so the
		// concatenation is in fact strictly increasing
		require.True(t, utils.IsStrictlyIncreasing(g))

		var want []float64
		for _, b := range c.SubBases() {
			sub, err := b.Grid(1)
			require.NoError(t, err)
			want = append(want, sub...)
		}
		require.Empty(t, cmp.Diff(want, g))
	})

	t.Run("UniformScale", func(t *testing.T) {
		n, err := c.GridSize(1.5)
		require.NoError(t, err)
		require.Equal(t, 24+48+24, n)

		g, err := c.Grid(1.5)
		require.NoError(t, err)
		require.Len(t, g, n)
		require.True(t, utils.IsStrictlyIncreasing(g))
	})

	t.Run("InvalidScale", func(t *testing.T) {
		_, err := c.Grid(0)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = c.GridSize(-2)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("DuplicateBoundaryPointsKept", func(t *testing.T) {
		b1, err := NewChebyshevLobatto("x1", 4, Interval{Lo: 0, Hi: 1}, 1)
		require.NoError(t, err)
		b2, err := NewChebyshevLobatto("x2", 4, Interval{Lo: 1, Hi: 2}, 1)
		require.NoError(t, err)
		lob, err := NewCompoundBasis("x", []Basis{b1, b2})
		require.NoError(t, err)

		g, err := lob.Grid(1)
		require.NoError(t, err)
		require.Len(t, g, 8)
		require.True(t, utils.IsNonDecreasing(g))
		require.Equal(t, 1.0, g[3])
		require.Equal(t, 1.0, g[4]) // shared boundary emitted by both sides
		require.False(t, utils.IsStrictlyIncreasing(g))
	})

	t.Run("Determinism", func(t *testing.T) {
		g1, err := c.Grid(1.5)
		require.NoError(t, err)
		g2, err := c.Grid(1.5)
		require.NoError(t, err)
		require.Equal(t, Fingerprint(g1), Fingerprint(g2))
	})
}
