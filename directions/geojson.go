package directions

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
	"github.com/MarkSixtyFour/class-djikstra/geo"
)

// Collection accumulates routes as GeoJSON features.
type Collection struct {
	fc *geojson.FeatureCollection
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{fc: geojson.NewFeatureCollection()}
}

// Add appends p as a LineString feature with source, destination and
// total_km properties. Coordinates are [longitude, latitude].
func (c *Collection) Add(p *dijkstra.Path) error {
	if p == nil || len(p.Vertices) == 0 {
		return ErrNilPath
	}

	ls := make(orb.LineString, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		ls = append(ls, geo.Coord{Lat: v.Latitude, Lon: v.Longitude}.Point())
	}

	f := geojson.NewFeature(ls)
	f.Properties["source"] = p.Source().Label
	f.Properties["destination"] = p.Destination().Label
	f.Properties["total_km"] = p.Total
	f.Properties["hops"] = p.HopCount()
	c.fc.Append(f)

	return nil
}

// Len returns the number of features.
func (c *Collection) Len() int { return len(c.fc.Features) }

// MarshalJSON encodes the FeatureCollection.
func (c *Collection) MarshalJSON() ([]byte, error) { return c.fc.MarshalJSON() }

// WriteFile writes the FeatureCollection to path, replacing any previous file.
func (c *Collection) WriteFile(path string) error {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("directions: encode geojson: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("directions: write %s: %w", path, err)
	}

	return nil
}
