package boundary

import (
	"github.com/paulmach/osm"
)

// findDeterminant computes the signed determinant of the given ordered ways,
// see https://en.wikipedia.org/wiki/Curve_orientation
// Negative -> clockwise, positive -> counterclockwise, 0 -> nodes are collinear (or there
// are not enough distinct candidate nodes)
func findDeterminant(ways []Way) float64 {
	allNodes := flattenWayNodes(ways)
	detNodes := findDetNodes(allNodes)
	if len(detNodes) < 3 {
		return 0
	}
	det := tripletDeterminant(detNodes[0], detNodes[1], detNodes[2])
	if det == 0 && len(detNodes) == 4 {
		// One more candidate node gives three more triplets to try
		det = tripletDeterminant(detNodes[1], detNodes[2], detNodes[3])
		if det == 0 {
			det = tripletDeterminant(detNodes[0], detNodes[2], detNodes[3])
		}
		if det == 0 {
			det = tripletDeterminant(detNodes[0], detNodes[1], detNodes[3])
		}
	}
	return det
}

// flattenWayNodes collects the nodes of all ways into one sequence preserving traversal order
func flattenWayNodes(ways []Way) []Node {
	allNodes := []Node{}
	for _, way := range ways {
		allNodes = append(allNodes, way.nodes...)
	}
	return allNodes
}

// findDetNodes selects up to four extremal candidate nodes for the determinant calculation
// and orders them the way they first appear in the given node sequence. The four selections
// may collapse to fewer distinct nodes
func findDetNodes(allNodes []Node) []Node {
	if len(allNodes) == 0 {
		return nil
	}
	candidates := []Node{
		smallestLonNode(allNodes),
		biggestLonNode(allNodes),
		smallestLatNode(allNodes),
		biggestLatNode(allNodes),
	}
	wanted := make(map[osm.NodeID]struct{}, len(candidates))
	for _, node := range candidates {
		wanted[node.ID] = struct{}{}
	}
	ordered := make([]Node, 0, len(wanted))
	for _, node := range allNodes {
		if _, ok := wanted[node.ID]; ok {
			delete(wanted, node.ID)
			ordered = append(ordered, node)
		}
	}
	return ordered
}

// tripletDeterminant computes the cross product determinant of three nodes
func tripletDeterminant(a, b, c Node) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (c.Lon-a.Lon)*(b.Lat-a.Lat)
}

// smallestLonNode returns the node with the smallest longitude; if there are more than one,
// the one with the smallest latitude wins
func smallestLonNode(allNodes []Node) Node {
	node := allNodes[0]
	for _, n := range allNodes[1:] {
		if n.Lon < node.Lon || (n.Lon == node.Lon && n.Lat < node.Lat) {
			node = n
		}
	}
	return node
}

// biggestLonNode returns the node with the biggest longitude; if there are more than one,
// the one with the biggest latitude wins
func biggestLonNode(allNodes []Node) Node {
	node := allNodes[0]
	for _, n := range allNodes[1:] {
		if n.Lon > node.Lon || (n.Lon == node.Lon && n.Lat > node.Lat) {
			node = n
		}
	}
	return node
}

// smallestLatNode returns the node with the smallest latitude; if there are more than one,
// the one with the biggest longitude wins
func smallestLatNode(allNodes []Node) Node {
	node := allNodes[0]
	for _, n := range allNodes[1:] {
		if n.Lat < node.Lat || (n.Lat == node.Lat && n.Lon > node.Lon) {
			node = n
		}
	}
	return node
}

// biggestLatNode returns the node with the biggest latitude; if there are more than one,
// the one with the smallest longitude wins
func biggestLatNode(allNodes []Node) Node {
	node := allNodes[0]
	for _, n := range allNodes[1:] {
		if n.Lat > node.Lat || (n.Lat == node.Lat && n.Lon < node.Lon) {
			node = n
		}
	}
	return node
}
