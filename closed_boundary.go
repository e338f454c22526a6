package boundary

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ClosedBoundary is a ring of ways chained by their endpoint nodes together with its
// winding orientation. It is built once from a set of ways and never mutated afterwards
type ClosedBoundary struct {
	ways     []Way
	leftover []Way
	det      float64
	verbose  bool
}

// NewClosedBoundary chains the given ways into a closed ring and computes its determinant.
// Ways are reversed as needed during chaining. Returns ErrBoundaryNotClosed if the ways do
// not form a closed ring. Ways which close no gap in the ring are kept aside and can be
// inspected via LeftoverWays, e.g. to discover additional rings
func NewClosedBoundary(ways []Way, options ...func(*ClosedBoundary)) (*ClosedBoundary, error) {
	boundary := &ClosedBoundary{}
	for _, option := range options {
		option(boundary)
	}
	ordered, leftover, err := assembleBoundary(ways)
	if err != nil {
		return nil, err
	}
	boundary.ways = ordered
	boundary.leftover = leftover
	boundary.det = findDeterminant(ordered)
	if boundary.verbose {
		for _, way := range ordered {
			fmt.Printf("Way %s -> %s\n", way.StartNode(), way.EndNode())
		}
		if len(leftover) != 0 {
			fmt.Printf("[WARNING]: There are still %d ways left over, we might have a 'Berlin (West)' problem\n", len(leftover))
		}
		fmt.Printf("The determinant: %.2f -> %s\n", boundary.det, boundary.Orientation())
	}
	return boundary, nil
}

// WithVerbose sets flag for printing debug info
func WithVerbose(verbose bool) func(*ClosedBoundary) {
	return func(boundary *ClosedBoundary) {
		boundary.verbose = verbose
	}
}

// Determinant returns the signed determinant of the boundary
func (boundary *ClosedBoundary) Determinant() float64 {
	return boundary.det
}

// IsClockwise returns true if the boundary orientation is clockwise
func (boundary *ClosedBoundary) IsClockwise() bool {
	return boundary.det < 0
}

// IsCounterclockwise returns true if the boundary orientation is counterclockwise
func (boundary *ClosedBoundary) IsCounterclockwise() bool {
	return boundary.det > 0
}

// Orientation returns the winding direction of the boundary
func (boundary *ClosedBoundary) Orientation() Orientation {
	if boundary.det < 0 {
		return ORIENTATION_CLOCKWISE
	}
	if boundary.det > 0 {
		return ORIENTATION_COUNTERCLOCKWISE
	}
	return ORIENTATION_UNDEFINED
}

// WayList returns the ordered ways of the boundary
func (boundary *ClosedBoundary) WayList() []Way {
	ways := make([]Way, len(boundary.ways))
	copy(ways, boundary.ways)
	return ways
}

// ReversedWayList returns a new way list with the order of ways turned around and every
// way reversed. It does not alias the original list
func (boundary *ClosedBoundary) ReversedWayList() []Way {
	reversed := make([]Way, 0, len(boundary.ways))
	for i := len(boundary.ways) - 1; i >= 0; i-- {
		reversed = append(reversed, boundary.ways[i].Reverse())
	}
	return reversed
}

// LeftoverWays returns the ways which were not consumed while closing the boundary
func (boundary *ClosedBoundary) LeftoverWays() []Way {
	leftover := make([]Way, len(boundary.leftover))
	copy(leftover, boundary.leftover)
	return leftover
}

// Ring returns the boundary geometry. Junction nodes shared by adjacent ways appear once
func (boundary *ClosedBoundary) Ring() orb.Ring {
	ring := orb.Ring{}
	for i, way := range boundary.ways {
		nodes := way.nodes
		if i != 0 {
			nodes = nodes[1:]
		}
		for _, node := range nodes {
			ring = append(ring, orb.Point{node.Lon, node.Lat})
		}
	}
	return ring
}

// Bound returns the bounding box of the boundary
func (boundary *ClosedBoundary) Bound() orb.Bound {
	return boundary.Ring().Bound()
}

// Length returns the great circle length of the boundary (kilometers)
func (boundary *ClosedBoundary) Length() float64 {
	return getSphericalLength(orb.LineString(boundary.Ring()))
}

// Centroid returns the center point of the boundary
func (boundary *ClosedBoundary) Centroid() orb.Point {
	ring := boundary.Ring()
	if len(ring) == 0 {
		return orb.Point{}
	}
	return findCentroid(orb.LineString(ring))
}

// String returns pretty printed value for ClosedBoundary
func (boundary *ClosedBoundary) String() string {
	centroid := boundary.Centroid()
	return fmt.Sprintf(`
Closed boundary:
	ways: %d
	leftover ways: %d
	determinant: %f
	orientation: '%s'
	length (km): %f
	centroid: Lon: %f | Lat: %f
	`,
		len(boundary.ways),
		len(boundary.leftover),
		boundary.det,
		boundary.Orientation(),
		boundary.Length(),
		centroid[0],
		centroid[1],
	)
}
