package boundary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// ImportFromOSMFile extracts the outer member ways of the given boundary relation from an
// *.osm or *.osm.pbf file. The ways are returned in the relation's member order with the
// node directions as stored, so they are usually not chained yet
func ImportFromOSMFile(fileName string, relationID int64, verbose bool) ([]Way, error) {
	if verbose {
		fmt.Printf("Importing boundary relation %d...\n", relationID)
	}
	st := time.Now()

	data, err := readOSM(fileName, relationID, verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read OSM data")
	}

	ways := make([]Way, 0, len(data.memberWayIDs))
	skippedWays := 0
	for _, wayID := range data.memberWayIDs {
		wayNodes, ok := data.ways[wayID]
		if !ok {
			fmt.Printf("[WARNING]: Way %d is not found in file '%s'. Skip it\n", wayID, fileName)
			skippedWays++
			continue
		}
		nodes := make([]Node, 0, len(wayNodes))
		nodesComplete := true
		for _, nodeID := range wayNodes {
			node, ok := data.nodes[nodeID]
			if !ok {
				fmt.Printf("[WARNING]: Missing node with ID: %d. Skip way %d\n", nodeID, wayID)
				nodesComplete = false
				break
			}
			nodes = append(nodes, node)
		}
		if !nodesComplete {
			skippedWays++
			continue
		}
		way, err := NewWay(nodes)
		if err != nil {
			fmt.Printf("[WARNING]: Can't prepare way %d: %s. Skip it\n", wayID, err)
			skippedWays++
			continue
		}
		ways = append(ways, way)
	}

	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
		fmt.Printf("\tWays: %d\n", len(ways))
		fmt.Printf("\tSkipped ways: %d\n", skippedWays)
	}
	return ways, nil
}

// BoundaryRelation is a summary of a single boundary relation found in an OSM file
type BoundaryRelation struct {
	ID         osm.RelationID
	Name       string
	AdminLevel string
	WayMembers int
}

func (rel BoundaryRelation) String() string {
	return fmt.Sprintf("Relation %d | name: '%s' | admin_level: '%s' | member ways: %d", rel.ID, rel.Name, rel.AdminLevel, rel.WayMembers)
}

// ReadBoundaryRelations lists the relations of an *.osm or *.osm.pbf file whose tags match
// the given configuration. The relations are returned in file order
func ReadBoundaryRelations(fileName string, cfg *OsmConfiguration, verbose bool) ([]BoundaryRelation, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", fileName)
	}
	// Open file
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if verbose {
		fmt.Printf("\tProcessing relations... ")
	}
	st := time.Now()
	relations := []BoundaryRelation{}
	{
		var scannerRelations OSMScanner

		// Guess file extension and prepare correct scanner for relations
		ext := filepath.Ext(fileName)
		switch ext {
		case ".osm", ".xml":
			scannerRelations = osmxml.New(context.Background(), file)
		case ".pbf", ".osm.pbf":
			scannerRelations = osmpbf.New(context.Background(), file, 4)
		default:
			return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, fileName)
		}
		defer scannerRelations.Close()

		// Scan relations
		for scannerRelations.Scan() {
			obj := scannerRelations.Object()
			if obj.ObjectID().Type() != "relation" {
				continue
			}
			relation := obj.(*osm.Relation)
			tagMap := relation.TagMap()
			tag, ok := tagMap[cfg.EntityName]
			if !ok {
				continue
			}
			if !cfg.CheckTag(tag) {
				continue
			}
			wayMembers := 0
			for _, member := range relation.Members {
				if member.Type == "way" {
					wayMembers++
				}
			}
			relations = append(relations, BoundaryRelation{
				ID:         relation.ID,
				Name:       tagMap["name"],
				AdminLevel: tagMap["admin_level"],
				WayMembers: wayMembers,
			})
		}
		err = scannerRelations.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
		fmt.Printf("Number of boundary relations: %d\n", len(relations))
	}
	return relations, nil
}
