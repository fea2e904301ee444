package report

import (
	"encoding/json"
	"fmt"
	"fracture-density-service/internal/domain"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func toLineString(s domain.Segment) orb.LineString {
	return orb.LineString{{s.P0.X, s.P0.Y}, {s.P1.X, s.P1.Y}}
}

// FeatureCollection renders the fracture/borehole schematic of a run.
// Features carry a "kind" property: domain, fracture or borehole.
func FeatureCollection(s Snapshot) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ring := orb.Ring{}
	for _, c := range s.Domain.Corners() {
		ring = append(ring, orb.Point{c.X, c.Y})
	}
	ring = append(ring, ring[0])

	df := geojson.NewFeature(orb.Polygon{ring})
	df.Properties["kind"] = "domain"
	df.Properties["xmax"] = s.Domain.XMax
	df.Properties["ymax"] = s.Domain.YMax
	fc.Append(df)

	for i, f := range s.Fractures {
		ff := geojson.NewFeature(toLineString(f))
		ff.Properties["kind"] = "fracture"
		ff.Properties["index"] = i
		fc.Append(ff)
	}

	for _, t := range s.Trials {
		bf := geojson.NewFeature(toLineString(t.Borehole))
		bf.Properties["kind"] = "borehole"
		bf.Properties["trial"] = t.Index
		bf.Properties["crossings"] = t.Crossings
		bf.Properties["p10"] = t.P10
		fc.Append(bf)
	}

	return fc
}

func WriteGeoJSON(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FeatureCollection(s)); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
