package boundary

import (
	"fmt"

	"github.com/paulmach/osm"
)

// Node is a single point of a boundary way.
// Identity of a node is defined by its ID alone: two nodes carrying the same ID are treated
// as the same point even if their coordinates differ. Callers have to guarantee that an ID
// is unique per location
type Node struct {
	ID  osm.NodeID
	Lon float64
	Lat float64
}

// String returns pretty printed value for Node
func (node Node) String() string {
	return fmt.Sprintf("%d (%.2f/%.2f)", node.ID, node.Lon, node.Lat)
}
