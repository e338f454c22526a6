package boundary

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestPrepareGeoJSONPolygon(t *testing.T) {
	ring := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	correct := `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}`
	got := PrepareGeoJSONPolygon(ring)
	if got != correct {
		t.Errorf("GeoJSON polygon must be '%s', but got '%s'", correct, got)
	}
}

func TestPrepareGeoJSONLinestring(t *testing.T) {
	line := orb.LineString{{13.1, 52.4}, {13.6, 52.35}}
	correct := `{"type":"LineString","coordinates":[[13.1,52.4],[13.6,52.35]]}`
	got := PrepareGeoJSONLinestring(line)
	if got != correct {
		t.Errorf("GeoJSON linestring must be '%s', but got '%s'", correct, got)
	}
}

func TestPrepareGeoJSONPoint(t *testing.T) {
	pt := orb.Point{13.1, 52.4}
	correct := `{"type":"Point","coordinates":[13.1,52.4]}`
	got := PrepareGeoJSONPoint(pt)
	if got != correct {
		t.Errorf("GeoJSON point must be '%s', but got '%s'", correct, got)
	}
}
