package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	boundary "github.com/thomasweitzel/closed-boundary"
	"github.com/pkg/errors"
)

var (
	osmFileName = flag.String("file", "boundary.osm", "Filename of *.osm or *.osm.pbf file")
	relationID  = flag.Int64("relation", 0, "ID of the boundary relation to assemble. Use 0 to list matching relations instead")
	tagStr      = flag.String("tags", "administrative", "Set of needed boundary tags (separated by commas) for listing relations")
	geomFormat  = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	out         = flag.String("out", "", "Filename of output geometry. Prints to stdout when empty")
	verbose     = flag.Bool("verbose", true, "Verbose output?")
)

func main() {

	flag.Parse()

	if *relationID == 0 {
		/* List matching relations */
		tags := strings.Split(*tagStr, ",")
		cfg := boundary.OsmConfiguration{
			EntityName: "boundary",
			Tags:       tags,
		}
		relations, err := boundary.ReadBoundaryRelations(*osmFileName, &cfg, *verbose)
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, relation := range relations {
			fmt.Println(relation)
		}
		return
	}

	/* Assemble the boundary */
	ways, err := boundary.ImportFromOSMFile(*osmFileName, *relationID, *verbose)
	if err != nil {
		fmt.Println(err)
		return
	}
	closedBoundary, err := boundary.NewClosedBoundary(ways, boundary.WithVerbose(*verbose))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(closedBoundary)

	geomStr := ""
	if strings.ToLower(*geomFormat) == "geojson" {
		geomStr = boundary.PrepareGeoJSONPolygon(closedBoundary.Ring())
	} else {
		geomStr = boundary.PrepareWKTPolygon(closedBoundary.Ring())
	}

	for _, way := range closedBoundary.LeftoverWays() {
		leftoverGeom := ""
		if strings.ToLower(*geomFormat) == "geojson" {
			leftoverGeom = boundary.PrepareGeoJSONLinestring(way.LineString())
		} else {
			leftoverGeom = boundary.PrepareWKTLinestring(way.LineString())
		}
		fmt.Printf("[WARNING]: Leftover way %s -> %s: %s\n", way.StartNode(), way.EndNode(), leftoverGeom)
	}

	if *out == "" {
		fmt.Println(geomStr)
		return
	}

	/* Geometry file */
	file, err := os.Create(*out)
	if err != nil {
		fmt.Println(errors.Wrap(err, "Can't create geometry file"))
		return
	}
	defer file.Close()
	_, err = file.WriteString(geomStr + "\n")
	if err != nil {
		fmt.Println(errors.Wrap(err, "Can't save geometry file"))
		return
	}
}
