package boundary

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMDataRaw is the raw material for building a closed boundary: the member ways of a
// single boundary relation and the nodes they reference
type OSMDataRaw struct {
	memberWayIDs []osm.WayID
	ways         map[osm.WayID][]osm.NodeID
	nodes        map[osm.NodeID]Node
}

// readOSM scans the given file for a boundary relation and collects its 'outer' member ways
// with full node information. The file is scanned three times: relations first (to know the
// member ways), then ways, then nodes
func readOSM(filename string, relationID int64, verbose bool) (*OSMDataRaw, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	/* Process relations */
	if verbose {
		fmt.Printf("\tProcessing relations... ")
	}
	st := time.Now()
	memberWayIDs := []osm.WayID{}
	relationFound := false
	{
		var scannerRelations OSMScanner

		// Guess file extension and prepare correct scanner for relations
		ext := filepath.Ext(filename)
		switch ext {
		case ".osm", ".xml":
			scannerRelations = osmxml.New(context.Background(), file)
		case ".pbf", ".osm.pbf":
			scannerRelations = osmpbf.New(context.Background(), file, 4)
		default:
			return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
		}
		defer scannerRelations.Close()

		// Scan relations
		for scannerRelations.Scan() {
			obj := scannerRelations.Object()
			if obj.ObjectID().Type() != "relation" {
				continue
			}
			relation := obj.(*osm.Relation)
			if int64(relation.ID) != relationID {
				continue
			}
			relationFound = true
			for _, member := range relation.Members {
				if member.Type != "way" {
					continue
				}
				// Only the outer ring is of interest; an empty role is treated as outer
				if member.Role != "outer" && member.Role != "" {
					continue
				}
				memberWayIDs = append(memberWayIDs, osm.WayID(member.Ref))
			}
		}
		err = scannerRelations.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	if !relationFound {
		return nil, fmt.Errorf("Relation with ID '%d' is not found in file '%s'", relationID, filename)
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after relations scanning")
	}

	/* Process ways */
	if verbose {
		fmt.Printf("\tProcessing ways... ")
	}
	st = time.Now()
	memberSet := make(map[osm.WayID]struct{}, len(memberWayIDs))
	for _, wayID := range memberWayIDs {
		memberSet[wayID] = struct{}{}
	}
	ways := make(map[osm.WayID][]osm.NodeID, len(memberWayIDs))
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		var scannerWays OSMScanner

		// Guess file extension and prepare correct scanner for ways
		ext := filepath.Ext(filename)
		switch ext {
		case ".osm", ".xml":
			scannerWays = osmxml.New(context.Background(), file)
		case ".pbf", ".osm.pbf":
			scannerWays = osmpbf.New(context.Background(), file, 4)
		default:
			return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
		}
		defer scannerWays.Close()

		// Scan ways
		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != "way" {
				continue
			}
			way := obj.(*osm.Way)
			if _, ok := memberSet[way.ID]; !ok {
				continue
			}
			wayNodes := make([]osm.NodeID, 0, len(way.Nodes))
			// Mark way's nodes as seen to pick up their coordinates in the next pass
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
				wayNodes = append(wayNodes, node.ID)
			}
			ways[way.ID] = wayNodes
		}
		err = scannerWays.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	if verbose {
		fmt.Printf("\tProcessing nodes... ")
	}
	st = time.Now()
	nodes := make(map[osm.NodeID]Node)
	{
		var scannerNodes OSMScanner

		// Guess file extension and prepare correct scanner for nodes
		ext := filepath.Ext(filename)
		switch ext {
		case ".osm", ".xml":
			scannerNodes = osmxml.New(context.Background(), file)
		case ".pbf", ".osm.pbf":
			scannerNodes = osmpbf.New(context.Background(), file, 4)
		default:
			return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
		}
		defer scannerNodes.Close()

		// Scan nodes
		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != "node" {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				delete(nodesSeen, node.ID)
				nodes[node.ID] = Node{
					ID:  node.ID,
					Lon: node.Lon,
					Lat: node.Lat,
				}
			}
		}
		err = scannerNodes.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	if verbose {
		fmt.Printf("Number of member ways: %d\n", len(ways))
		fmt.Printf("Number of nodes: %d\n", len(nodes))
	}

	data := OSMDataRaw{
		memberWayIDs: memberWayIDs,
		ways:         ways,
		nodes:        nodes,
	}
	return &data, nil
}
