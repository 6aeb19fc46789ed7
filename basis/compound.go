package basis

import (
	"fmt"
	"math/big"
)

// CompoundBasis aggregates an ordered sequence of bases whose intervals
// partition a larger domain end-to-end. It exposes the same grid contract as
// Basis over the union; grid queries delegate to each sub-basis in order and
// concatenate.
type CompoundBasis struct {
	name string
	sub  []Basis
}

// NewCompoundBasis returns a CompoundBasis over the given sub-bases. The
// sub-bases must be contiguous and non-overlapping: each one's upper bound
// must equal the next one's lower bound exactly. A gap or overlap fails with
// ErrValidation naming the offending pair and both boundary values.
func NewCompoundBasis(name string, sub []Basis) (CompoundBasis, error) {
	if name == "" {
		return CompoundBasis{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidParameter)
	}
	if len(sub) < 2 {
		return CompoundBasis{}, fmt.Errorf("%w: compound basis needs at least 2 sub-bases but got %d", ErrInvalidParameter, len(sub))
	}
	for i := 0; i+1 < len(sub); i++ {
		hi, lo := sub[i].Interval().Hi, sub[i+1].Interval().Lo
		if hi < lo {
			return CompoundBasis{}, fmt.Errorf("%w: gap between sub-bases %d and %d: %v < %v", ErrValidation, i, i+1, hi, lo)
		}
		if hi > lo {
			return CompoundBasis{}, fmt.Errorf("%w: overlap between sub-bases %d and %d: %v > %v", ErrValidation, i, i+1, hi, lo)
		}
	}
	cpy := make([]Basis, len(sub))
	copy(cpy, sub)
	return CompoundBasis{name: name, sub: cpy}, nil
}

// Name returns the compound basis identifier.
func (c CompoundBasis) Name() string {
	return c.name
}

// SubBases returns a copy of the ordered sub-basis sequence.
func (c CompoundBasis) SubBases() []Basis {
	sub := make([]Basis, len(c.sub))
	copy(sub, c.sub)
	return sub
}

// Interval returns the overall extent, from the first sub-basis's lower
// bound to the last one's upper bound.
func (c CompoundBasis) Interval() Interval {
	return Interval{Lo: c.sub[0].Interval().Lo, Hi: c.sub[len(c.sub)-1].Interval().Hi}
}

// Size returns the sum of the sub-basis base mode counts.
func (c CompoundBasis) Size() (size int) {
	for _, b := range c.sub {
		size += b.Size()
	}
	return
}

// GridSize returns the total point count at the given scale, the sum of the
// per-sub-basis counts.
func (c CompoundBasis) GridSize(scale float64) (n int, err error) {
	for _, b := range c.sub {
		ni, err := b.GridSize(scale)
		if err != nil {
			return 0, err
		}
		n += ni
	}
	return n, nil
}

// Grid returns the concatenation, in sub-basis order, of each sub-basis's
// grid at the given scale. The same scale applies to every sub-basis. The
// result is monotonically non-decreasing; shared boundary points emitted by
// endpoint-including families are kept, not deduplicated.
func (c CompoundBasis) Grid(scale float64) ([]float64, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	n, _ := c.GridSize(scale)
	points := make([]float64, 0, n)
	for _, b := range c.sub {
		sub, err := b.Grid(scale)
		if err != nil {
			return nil, err
		}
		points = append(points, sub...)
	}
	return points, nil
}

// GridBig is the extended-precision counterpart of Grid, concatenating each
// sub-basis's GridBig at prec bits.
func (c CompoundBasis) GridBig(scale float64, prec uint) ([]*big.Float, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	n, _ := c.GridSize(scale)
	points := make([]*big.Float, 0, n)
	for _, b := range c.sub {
		sub, err := b.GridBig(scale, prec)
		if err != nil {
			return nil, err
		}
		points = append(points, sub...)
	}
	return points, nil
}
