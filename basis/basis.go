// Package basis implements 1-D spectral collocation bases. A Basis is an
// immutable discretization of an interval producing physical-space grids at
// any positive scale factor; a CompoundBasis concatenates several bases over
// contiguous sub-intervals into a single piecewise coordinate.
package basis

import (
	"fmt"
	"math"
)

// countEps guards the ceiling point-count rule against float representation
// error, so an intended integer product like 32*1.5 never rounds up to 49.
const countEps = 1e-9

// Interval is a physical-space extent (Lo, Hi) with Lo < Hi.
type Interval struct {
	Lo, Hi float64
}

// Length returns Hi - Lo.
func (iv Interval) Length() float64 {
	return iv.Hi - iv.Lo
}

// Contains returns true if Lo <= x <= Hi.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

func (iv Interval) String() string {
	return fmt.Sprintf("(%v, %v)", iv.Lo, iv.Hi)
}

func (iv Interval) validate() error {
	if math.IsNaN(iv.Lo) || math.IsInf(iv.Lo, 0) || math.IsNaN(iv.Hi) || math.IsInf(iv.Hi, 0) {
		return fmt.Errorf("%w: interval bounds must be finite but are %s", ErrInvalidParameter, iv)
	}
	if iv.Lo >= iv.Hi {
		return fmt.Errorf("%w: interval must satisfy lo < hi but is %s", ErrInvalidParameter, iv)
	}
	return nil
}

// Basis is one 1-D spectral discretization over an interval. It is immutable
// after construction; every grid query is a pure function of (size, interval,
// scale) and recomputes its result on each call.
type Basis struct {
	name     string
	family   Family
	size     int
	interval Interval
	dealias  float64
}

// NewBasis returns a Basis with the given family, base mode count and
// physical interval. dealias is the default oversampling scale used by
// [Basis.GridDealiased]; pass 1 for no oversampling.
func NewBasis(name string, family Family, size int, interval Interval, dealias float64) (Basis, error) {
	if name == "" {
		return Basis{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidParameter)
	}
	if !family.Valid() {
		return Basis{}, fmt.Errorf("%w: unknown family %d", ErrInvalidParameter, uint8(family))
	}
	if size < 1 {
		return Basis{}, fmt.Errorf("%w: size must be >= 1 but is %d", ErrInvalidParameter, size)
	}
	if err := interval.validate(); err != nil {
		return Basis{}, err
	}
	if err := checkScale(dealias); err != nil {
		return Basis{}, fmt.Errorf("invalid dealias: %w", err)
	}
	return Basis{name: name, family: family, size: size, interval: interval, dealias: dealias}, nil
}

// NewChebyshev returns an interior Chebyshev-Gauss basis.
func NewChebyshev(name string, size int, interval Interval, dealias float64) (Basis, error) {
	return NewBasis(name, Chebyshev, size, interval, dealias)
}

// NewChebyshevLobatto returns an endpoint-including Chebyshev basis.
func NewChebyshevLobatto(name string, size int, interval Interval, dealias float64) (Basis, error) {
	return NewBasis(name, ChebyshevLobatto, size, interval, dealias)
}

// NewFourier returns an equispaced periodic basis.
func NewFourier(name string, size int, interval Interval, dealias float64) (Basis, error) {
	return NewBasis(name, Fourier, size, interval, dealias)
}

// NewLegendre returns an interior Gauss-Legendre basis.
func NewLegendre(name string, size int, interval Interval, dealias float64) (Basis, error) {
	return NewBasis(name, Legendre, size, interval, dealias)
}

// Name returns the basis identifier.
func (b Basis) Name() string {
	return b.name
}

// Family returns the collocation family.
func (b Basis) Family() Family {
	return b.family
}

// Size returns the base mode count (grid size at scale 1).
func (b Basis) Size() int {
	return b.size
}

// Interval returns the physical-space extent.
func (b Basis) Interval() Interval {
	return b.interval
}

// Dealias returns the default oversampling scale.
func (b Basis) Dealias() float64 {
	return b.dealias
}

func (b Basis) String() string {
	return fmt.Sprintf("%s(%q, %d, %s)", b.family, b.name, b.size, b.interval)
}

// GridSize returns the effective point count at the given scale,
// ceil(size*scale) with a small guard against float representation error.
func (b Basis) GridSize(scale float64) (int, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	return scaledSize(b.size, scale), nil
}

// Grid returns the physical-space collocation points at the given scale, in
// strictly increasing order. Interior families stay strictly inside the
// interval; ChebyshevLobatto includes both endpoints; Fourier includes the
// left endpoint only. Two calls with the same scale return bit-identical
// sequences.
func (b Basis) Grid(scale float64) ([]float64, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return b.mapFromReference(refNodes[b.family](scaledSize(b.size, scale))), nil
}

// GridDealiased returns Grid at the basis's default oversampling scale.
func (b Basis) GridDealiased() ([]float64, error) {
	return b.Grid(b.dealias)
}

// mapFromReference affinely maps nodes from [-1, 1] onto the interval,
// pinning the reference endpoints to exact interval bounds.
func (b Basis) mapFromReference(ref []float64) []float64 {
	half := 0.5 * b.interval.Length()
	x := make([]float64, len(ref))
	for i, r := range ref {
		switch r {
		case -1:
			x[i] = b.interval.Lo
		case 1:
			x[i] = b.interval.Hi
		default:
			x[i] = b.interval.Lo + (r+1)*half
		}
	}
	return x
}

func scaledSize(size int, scale float64) int {
	n := int(math.Ceil(float64(size)*scale - countEps))
	if n < 1 {
		n = 1
	}
	return n
}

func checkScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w: scale must be a positive finite number but is %v", ErrInvalidParameter, scale)
	}
	return nil
}
