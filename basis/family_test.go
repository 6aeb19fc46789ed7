package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodalflow/spectral/utils"
)

func TestFamily(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {
		for _, f := range testFamilies {
			require.True(t, f.Valid())
		}
		require.False(t, Family(99).Valid())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "Chebyshev", Chebyshev.String())
		require.Equal(t, "ChebyshevLobatto", ChebyshevLobatto.String())
		require.Equal(t, "Fourier", Fourier.String())
		require.Equal(t, "Legendre", Legendre.String())
		require.Equal(t, "Unknown", Family(99).String())
	})

	t.Run("Interior", func(t *testing.T) {
		require.True(t, Chebyshev.Interior())
		require.True(t, Legendre.Interior())
		require.False(t, ChebyshevLobatto.Interior())
		require.False(t, Fourier.Interior())
	})
}

func TestReferenceNodes(t *testing.T) {

	t.Run("ChebyshevGauss", func(t *testing.T) {
		nodes := chebyshevGaussNodes(4)
		require.Len(t, nodes, 4)
		require.True(t, utils.IsStrictlyIncreasing(nodes))
		for i, k := range []int{3, 2, 1, 0} {
			require.InDelta(t, math.Cos(math.Pi*(float64(k)+0.5)/4), nodes[i], 1e-15)
		}
	})

	t.Run("ChebyshevLobatto", func(t *testing.T) {
		require.Equal(t, []float64{0}, chebyshevLobattoNodes(1))
		require.Equal(t, []float64{-1, 1}, chebyshevLobattoNodes(2))

		nodes := chebyshevLobattoNodes(5)
		require.Equal(t, -1.0, nodes[0])
		require.Equal(t, 1.0, nodes[4])
		require.InDelta(t, 0, nodes[2], 1e-15)
		require.True(t, utils.IsStrictlyIncreasing(nodes))
	})

	t.Run("Fourier", func(t *testing.T) {
		require.Equal(t, []float64{-1, -0.5, 0, 0.5}, fourierNodes(4))
	})

	t.Run("AllFamiliesCoverReferenceInterval", func(t *testing.T) {
		for _, f := range testFamilies {
			for _, n := range []int{1, 2, 9, 40} {
				nodes := refNodes[f](n)
				require.Len(t, nodes, n)
				require.True(t, utils.IsStrictlyIncreasing(nodes))
				require.GreaterOrEqual(t, nodes[0], -1.0)
				require.LessOrEqual(t, nodes[n-1], 1.0)
			}
		}
	})
}
