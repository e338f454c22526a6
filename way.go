package boundary

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Way is an ordered sequence of at least two nodes forming one open polyline of a boundary.
// A way is immutable once constructed: reversing it produces a new way
type Way struct {
	nodes []Node
}

// NewWay validates the given nodes and returns a new Way. The node slice is copied
func NewWay(nodes []Node) (Way, error) {
	if len(nodes) < 2 {
		return Way{}, fmt.Errorf("There should be at least two nodes in a way, but got %d", len(nodes))
	}
	for _, node := range nodes {
		if node.ID == 0 {
			return Way{}, fmt.Errorf("Node without identifier in a way")
		}
	}
	copied := make([]Node, len(nodes))
	copy(copied, nodes)
	return Way{nodes: copied}, nil
}

// StartNode returns the first node of the way
func (way Way) StartNode() Node {
	return way.nodes[0]
}

// EndNode returns the last node of the way
func (way Way) EndNode() Node {
	return way.nodes[len(way.nodes)-1]
}

// Nodes returns a copy of the way nodes
func (way Way) Nodes() []Node {
	nodes := make([]Node, len(way.nodes))
	copy(nodes, way.nodes)
	return nodes
}

// Reverse returns a new way with the order of its nodes turned around
func (way Way) Reverse() Way {
	inputLen := len(way.nodes)
	reversed := make([]Node, inputLen)
	for i, node := range way.nodes {
		reversed[inputLen-i-1] = node
	}
	return Way{nodes: reversed}
}

// LineString returns the way geometry
func (way Way) LineString() orb.LineString {
	line := make(orb.LineString, 0, len(way.nodes))
	for _, node := range way.nodes {
		line = append(line, orb.Point{node.Lon, node.Lat})
	}
	return line
}
