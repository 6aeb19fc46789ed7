/*
Package spectral provides 1-D spectral discretization primitives: named
collocation bases over real intervals that produce physical-space grids at
arbitrary resolution scales, and compound bases that tile a larger domain
from contiguous sub-intervals. All values are immutable after construction
and every grid query is a pure function of its arguments, making concurrent
use safe without coordination.
*/
package spectral
