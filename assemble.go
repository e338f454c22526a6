package boundary

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// ErrBoundaryNotClosed is returned when a set of ways can not be chained into a closed ring
var ErrBoundaryNotClosed = errors.New("Boundary is not closed")

// endpointKey identifies a way by its directed endpoint pair.
// It is used for pool membership only, not as general way equality
type endpointKey struct {
	start osm.NodeID
	end   osm.NodeID
}

// wayPool is a worklist of ways indexed by their endpoint nodes.
// Iteration order is insertion order. Ways sharing the same directed endpoint pair
// collapse on intake, the first one wins
type wayPool struct {
	ways    []Way
	removed []bool
	left    int
	byStart map[osm.NodeID][]int
	byEnd   map[osm.NodeID][]int
}

func newWayPool(ways []Way) *wayPool {
	pool := &wayPool{
		ways:    make([]Way, 0, len(ways)),
		removed: make([]bool, 0, len(ways)),
		byStart: make(map[osm.NodeID][]int),
		byEnd:   make(map[osm.NodeID][]int),
	}
	seen := make(map[endpointKey]struct{}, len(ways))
	for _, way := range ways {
		key := endpointKey{start: way.StartNode().ID, end: way.EndNode().ID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		idx := len(pool.ways)
		pool.ways = append(pool.ways, way)
		pool.removed = append(pool.removed, false)
		pool.byStart[key.start] = append(pool.byStart[key.start], idx)
		pool.byEnd[key.end] = append(pool.byEnd[key.end], idx)
		pool.left++
	}
	return pool
}

func (pool *wayPool) takeAt(idx int) Way {
	pool.removed[idx] = true
	pool.left--
	return pool.ways[idx]
}

// takeFirst removes and returns the way which was inserted first
func (pool *wayPool) takeFirst() (Way, bool) {
	for idx := range pool.ways {
		if !pool.removed[idx] {
			return pool.takeAt(idx), true
		}
	}
	return Way{}, false
}

// takeByStart removes and returns the first way starting at the given node
func (pool *wayPool) takeByStart(nodeID osm.NodeID) (Way, bool) {
	queue := pool.byStart[nodeID]
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if !pool.removed[idx] {
			pool.byStart[nodeID] = queue
			return pool.takeAt(idx), true
		}
	}
	pool.byStart[nodeID] = queue
	return Way{}, false
}

// takeByEnd removes and returns the first way ending at the given node
func (pool *wayPool) takeByEnd(nodeID osm.NodeID) (Way, bool) {
	queue := pool.byEnd[nodeID]
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if !pool.removed[idx] {
			pool.byEnd[nodeID] = queue
			return pool.takeAt(idx), true
		}
	}
	pool.byEnd[nodeID] = queue
	return Way{}, false
}

// leftover returns the ways still sitting in the pool, in insertion order
func (pool *wayPool) leftover() []Way {
	var left []Way
	for idx := range pool.ways {
		if !pool.removed[idx] {
			left = append(left, pool.ways[idx])
		}
	}
	return left
}

// assembleBoundary chains the given ways into a closed ring by matching endpoint nodes.
// Chaining starts with the first way. The next way is the first one in insertion order which
// starts at the end node of the current way; if there is none, the first one which ends there
// is taken and reversed. Returns the ordered ring, the ways which did not make it into the
// ring and ErrBoundaryNotClosed if the chain does not close.
// The caller supplied slice is never modified
func assembleBoundary(ways []Way) ([]Way, []Way, error) {
	ordered := []Way{}
	pool := newWayPool(ways)

	currentWay, ok := pool.takeFirst()
	if !ok {
		return ordered, nil, nil
	}
	ordered = append(ordered, currentWay)

	for pool.left > 0 {
		targetID := currentWay.EndNode().ID
		nextWay, ok := pool.takeByStart(targetID)
		if !ok {
			nextWay, ok = pool.takeByEnd(targetID)
			if ok {
				nextWay = nextWay.Reverse()
			}
		}
		if !ok {
			// No next way, the chain stops here
			break
		}
		currentWay = nextWay
		ordered = append(ordered, currentWay)
	}

	// Start node of the first way has to be the end node of the last way
	if ordered[0].StartNode().ID != ordered[len(ordered)-1].EndNode().ID {
		return nil, nil, ErrBoundaryNotClosed
	}
	return ordered, pool.leftover(), nil
}
