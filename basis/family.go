package basis

import (
	"math"

	"github.com/nodalflow/spectral/utils"
)

// Family identifies a collocation point family. The set is closed: grids
// are produced through a fixed dispatch table, there is no user-extensible
// node generation.
type Family uint8

const (
	// Chebyshev is the interior Chebyshev-Gauss family cos(pi*(i+1/2)/n).
	// All points are strictly inside the interval.
	Chebyshev Family = iota

	// ChebyshevLobatto is the endpoint-including family cos(pi*i/(n-1)).
	// A single-point grid degenerates to the interval midpoint.
	ChebyshevLobatto

	// Fourier is the equispaced periodic family. The grid includes the left
	// endpoint and excludes the right one.
	Fourier

	// Legendre is the interior Gauss-Legendre family, the roots of the
	// degree-n Legendre polynomial.
	Legendre
)

// refNodes maps each family to its reference-node generator on [-1, 1].
// Generators return n strictly increasing nodes for any n >= 1.
var refNodes = map[Family]func(n int) []float64{
	Chebyshev:        chebyshevGaussNodes,
	ChebyshevLobatto: chebyshevLobattoNodes,
	Fourier:          fourierNodes,
	Legendre:         legendreNodes,
}

// Valid returns true if f is one of the declared families.
func (f Family) Valid() bool {
	_, ok := refNodes[f]
	return ok
}

// Interior returns true if the family excludes both interval endpoints.
func (f Family) Interior() bool {
	return f == Chebyshev || f == Legendre
}

func (f Family) String() string {
	switch f {
	case Chebyshev:
		return "Chebyshev"
	case ChebyshevLobatto:
		return "ChebyshevLobatto"
	case Fourier:
		return "Fourier"
	case Legendre:
		return "Legendre"
	default:
		return "Unknown"
	}
}

// chebyshevGaussNodes returns the n interior Chebyshev-Gauss nodes
// cos(pi*(i+1/2)/n) in increasing order.
func chebyshevGaussNodes(n int) []float64 {
	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = math.Cos(math.Pi * (float64(i) + 0.5) / float64(n))
	}
	utils.Reverse(nodes)
	return nodes
}

// chebyshevLobattoNodes returns the n Chebyshev-Gauss-Lobatto nodes
// cos(pi*i/(n-1)) in increasing order, with exact -1 and 1 endpoints.
func chebyshevLobattoNodes(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = math.Cos(math.Pi * float64(i) / float64(n-1))
	}
	utils.Reverse(nodes)
	nodes[0], nodes[n-1] = -1, 1
	return nodes
}

// fourierNodes returns n equispaced nodes -1 + 2i/n, left endpoint included,
// right endpoint excluded.
func fourierNodes(n int) []float64 {
	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = -1 + 2*float64(i)/float64(n)
	}
	return nodes
}
