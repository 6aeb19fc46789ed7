package basis

import "math"

const (
	newtonTol     = 1e-15
	newtonMaxIter = 100
)

// legendreNodes returns the n roots of the degree-n Legendre polynomial in
// increasing order. Roots are found by Newton iteration on the three-term
// recurrence, seeded with Chebyshev-type initial guesses; symmetry is
// enforced by computing one half and mirroring.
func legendreNodes(n int) []float64 {
	nodes := make([]float64, n)
	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for it := 0; it < newtonMaxIter; it++ {
			p, dp := legendrePoly(n, z)
			dz := p / dp
			z -= dz
			if math.Abs(dz) <= newtonTol {
				break
			}
		}
		nodes[i] = -z
		nodes[n-1-i] = z
	}
	if n%2 == 1 {
		nodes[n/2] = 0
	}
	return nodes
}

// legendrePoly evaluates P_n and its derivative at z using the recurrence
// (k+1) P_{k+1} = (2k+1) z P_k - k P_{k-1}. Only valid for |z| < 1, which
// holds for every Gauss-Legendre root.
func legendrePoly(n int, z float64) (p, dp float64) {
	p0, p1 := 1.0, z
	for k := 1; k < n; k++ {
		p0, p1 = p1, ((2*float64(k)+1)*z*p1-float64(k)*p0)/(float64(k)+1)
	}
	dp = float64(n) * (z*p1 - p0) / (z*z - 1)
	return p1, dp
}
