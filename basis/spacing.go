package basis

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// SpacingStats summarizes the consecutive point spacing of a grid. It is the
// numeric counterpart of eyeballing a plotted grid: comparing Mean across
// scales shows which grid is denser.
type SpacingStats struct {
	Min, Max, Mean, Median, StdDev float64
}

// Spacing returns the consecutive differences points[i+1]-points[i].
func Spacing(points []float64) []float64 {
	if len(points) < 2 {
		return nil
	}
	d := make([]float64, len(points)-1)
	for i := range d {
		d[i] = points[i+1] - points[i]
	}
	return d
}

// NewSpacingStats computes spacing statistics for a grid of at least two
// points.
func NewSpacingStats(points []float64) (SpacingStats, error) {
	if len(points) < 2 {
		return SpacingStats{}, fmt.Errorf("%w: spacing stats need at least 2 points but got %d", ErrInvalidParameter, len(points))
	}
	d := stats.Float64Data(Spacing(points))
	min, _ := stats.Min(d)
	max, _ := stats.Max(d)
	mean, _ := stats.Mean(d)
	median, _ := stats.Median(d)
	stddev, _ := stats.StandardDeviation(d)
	return SpacingStats{Min: min, Max: max, Mean: mean, Median: median, StdDev: stddev}, nil
}

func (s SpacingStats) String() string {
	return fmt.Sprintf("spacing{min: %.6g, max: %.6g, mean: %.6g, median: %.6g, stddev: %.6g}",
		s.Min, s.Max, s.Mean, s.Median, s.StdDev)
}
