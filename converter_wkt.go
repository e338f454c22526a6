package boundary

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTPolygon returns WKT representation of Polygon built from the given ring
func PrepareWKTPolygon(ring orb.Ring) string {
	return wkt.MarshalString(orb.Polygon{ring})
}

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(line orb.LineString) string {
	return wkt.MarshalString(line)
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return wkt.MarshalString(pt)
}
