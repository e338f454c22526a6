package boundary

import (
	"strings"
	"testing"
)

func TestImportFromOSMFile(t *testing.T) {
	ways, err := ImportFromOSMFile("sample.osm", 1111, false)
	if err != nil {
		t.Error(err)
		return
	}
	if len(ways) != 4 {
		t.Errorf("Relation must have %d member ways, but got %d", 4, len(ways))
		return
	}
	// Ways come in member order with their stored directions
	if ways[0].StartNode().ID != 1 || ways[0].EndNode().ID != 2 {
		t.Errorf("First way must be %d -> %d, but got %d -> %d", 1, 2, ways[0].StartNode().ID, ways[0].EndNode().ID)
	}
	if ways[2].StartNode().ID != 4 || ways[2].EndNode().ID != 3 {
		t.Errorf("Third way must be %d -> %d, but got %d -> %d", 4, 3, ways[2].StartNode().ID, ways[2].EndNode().ID)
	}
	if ways[0].StartNode().Lon != 13.1 || ways[0].StartNode().Lat != 52.4 {
		t.Errorf("First node must be at 13.1/52.4, but got %f/%f", ways[0].StartNode().Lon, ways[0].StartNode().Lat)
	}
	closedBoundary, err := NewClosedBoundary(ways)
	if err != nil {
		t.Error(err)
		return
	}
	if !closedBoundary.IsCounterclockwise() {
		t.Errorf("Boundary must be counterclockwise, but determinant is %f", closedBoundary.Determinant())
	}
	if len(closedBoundary.LeftoverWays()) != 0 {
		t.Errorf("There must be no leftover ways, but got %d", len(closedBoundary.LeftoverWays()))
	}
	ring := closedBoundary.Ring()
	if len(ring) != 5 {
		t.Errorf("Ring must have %d points, but got %d", 5, len(ring))
	}
	if !ring.Closed() {
		t.Errorf("Ring must be closed")
	}
}

func TestImportSkipsBrokenWays(t *testing.T) {
	ways, err := ImportFromOSMFile("sample.osm", 4444, false)
	if err != nil {
		t.Error(err)
		return
	}
	// Way 40 references a node missing from the file and has to be skipped
	if len(ways) != 2 {
		t.Errorf("Relation must have %d usable ways, but got %d", 2, len(ways))
		return
	}
	if ways[0].StartNode().ID != 9 || ways[0].EndNode().ID != 10 {
		t.Errorf("First way must be %d -> %d, but got %d -> %d", 9, 10, ways[0].StartNode().ID, ways[0].EndNode().ID)
	}
	if ways[1].StartNode().ID != 10 || ways[1].EndNode().ID != 9 {
		t.Errorf("Second way must be %d -> %d, but got %d -> %d", 10, 9, ways[1].StartNode().ID, ways[1].EndNode().ID)
	}
}

func TestImportMissingRelation(t *testing.T) {
	_, err := ImportFromOSMFile("sample.osm", 9999, false)
	if err == nil {
		t.Errorf("Missing relation must not be imported")
		return
	}
	if !strings.Contains(err.Error(), "is not found") {
		t.Errorf("Error must point at the missing relation, but got '%s'", err)
	}
}

func TestReadBoundaryRelations(t *testing.T) {
	cfg := OsmConfiguration{
		EntityName: "boundary",
		Tags:       []string{"administrative"},
	}
	relations, err := ReadBoundaryRelations("sample.osm", &cfg, false)
	if err != nil {
		t.Error(err)
		return
	}
	if len(relations) != 3 {
		t.Errorf("File must contain %d boundary relations, but got %d", 3, len(relations))
		return
	}
	correct := []BoundaryRelation{
		{ID: 1111, Name: "Altstadt", AdminLevel: "4", WayMembers: 5},
		{ID: 2222, Name: "Neustadt", AdminLevel: "6", WayMembers: 2},
		{ID: 4444, Name: "Hafen", AdminLevel: "8", WayMembers: 3},
	}
	for i := range correct {
		if relations[i] != correct[i] {
			t.Errorf("Relation %d must be %v, but got %v", i, correct[i], relations[i])
		}
	}
	correctStr := "Relation 1111 | name: 'Altstadt' | admin_level: '4' | member ways: 5"
	if relations[0].String() != correctStr {
		t.Errorf("Relation summary must be '%s', but got '%s'", correctStr, relations[0].String())
	}
}
