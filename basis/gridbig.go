package basis

import (
	"math/big"

	"github.com/nodalflow/spectral/utils/bignum"
)

// GridBig returns the same grid as Grid, computed at prec bits of precision.
// The float64 grid agrees with GridBig to float64 rounding.
func (b Basis) GridBig(scale float64, prec uint) ([]*big.Float, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	n := scaledSize(b.size, scale)
	var ref []*big.Float
	switch b.family {
	case Chebyshev:
		ref = chebyshevGaussNodesBig(n, prec)
	case ChebyshevLobatto:
		ref = chebyshevLobattoNodesBig(n, prec)
	case Fourier:
		ref = fourierNodesBig(n, prec)
	case Legendre:
		ref = legendreNodesBig(n, prec)
	}

	half := bignum.NewFloat(b.interval.Hi, prec)
	half.Sub(half, bignum.NewFloat(b.interval.Lo, prec))
	half.Quo(half, bignum.NewFloat(2, prec))
	lo := bignum.NewFloat(b.interval.Lo, prec)
	one := bignum.NewFloat(1, prec)
	for _, r := range ref {
		r.Add(r, one)
		r.Mul(r, half)
		r.Add(r, lo)
	}
	return ref, nil
}

func chebyshevGaussNodesBig(n int, prec uint) []*big.Float {
	nodes := make([]*big.Float, n)
	piOverN := bignum.Pi(prec)
	piOverN.Quo(piOverN, bignum.NewFloat(n, prec))
	for i := 0; i < n; i++ {
		theta := bignum.NewFloat(float64(i)+0.5, prec)
		theta.Mul(theta, piOverN)
		nodes[n-1-i] = bignum.Cos(theta)
	}
	return nodes
}

func chebyshevLobattoNodesBig(n int, prec uint) []*big.Float {
	if n == 1 {
		return []*big.Float{bignum.NewFloat(0, prec)}
	}
	nodes := make([]*big.Float, n)
	piOverN := bignum.Pi(prec)
	piOverN.Quo(piOverN, bignum.NewFloat(n-1, prec))
	for i := 1; i < n-1; i++ {
		theta := bignum.NewFloat(i, prec)
		theta.Mul(theta, piOverN)
		nodes[n-1-i] = bignum.Cos(theta)
	}
	nodes[0] = bignum.NewFloat(-1, prec)
	nodes[n-1] = bignum.NewFloat(1, prec)
	return nodes
}

func fourierNodesBig(n int, prec uint) []*big.Float {
	nodes := make([]*big.Float, n)
	nBig := bignum.NewFloat(n, prec)
	one := bignum.NewFloat(1, prec)
	for i := 0; i < n; i++ {
		x := bignum.NewFloat(2*i, prec)
		x.Quo(x, nBig)
		x.Sub(x, one)
		nodes[i] = x
	}
	return nodes
}

// legendreNodesBig refines the float64 Gauss-Legendre roots with Newton
// iterations carried out in big.Float arithmetic.
func legendreNodesBig(n int, prec uint) []*big.Float {
	nodes := make([]*big.Float, n)
	tol := bignum.Pow(bignum.NewFloat(2, prec), bignum.NewFloat(2-int(prec), prec))
	for i, seed := range legendreNodes(n) {
		z := bignum.NewFloat(seed, prec)
		for it := 0; it < newtonMaxIter; it++ {
			p, dp := legendrePolyBig(n, z, prec)
			dz := p.Quo(p, dp)
			z.Sub(z, dz)
			if dz.Abs(dz).Cmp(tol) <= 0 {
				break
			}
		}
		nodes[i] = z
	}
	if n%2 == 1 {
		nodes[n/2] = bignum.NewFloat(0, prec)
	}
	return nodes
}

// legendrePolyBig evaluates P_n and its derivative at z at prec bits, using
// the same recurrence as legendrePoly.
func legendrePolyBig(n int, z *big.Float, prec uint) (p, dp *big.Float) {
	p0 := bignum.NewFloat(1, prec)
	p1 := new(big.Float).SetPrec(prec).Set(z)
	tmp := new(big.Float).SetPrec(prec)
	for k := 1; k < n; k++ {
		t := bignum.NewFloat(2*k+1, prec)
		t.Mul(t, z)
		t.Mul(t, p1)
		tmp.Mul(bignum.NewFloat(k, prec), p0)
		t.Sub(t, tmp)
		t.Quo(t, bignum.NewFloat(k+1, prec))
		p0, p1 = p1, t
	}
	dp = new(big.Float).SetPrec(prec).Mul(z, p1)
	dp.Sub(dp, p0)
	dp.Mul(dp, bignum.NewFloat(n, prec))
	den := new(big.Float).SetPrec(prec).Mul(z, z)
	den.Sub(den, bignum.NewFloat(1, prec))
	dp.Quo(dp, den)
	return p1, dp
}
