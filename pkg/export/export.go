package export

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-kml"
)

// RouteLine. one computed route, origin and destination are the endpoint labels.
type RouteLine struct {
	Origin      string
	Destination string
	Coordinates []geo.Coordinate
	Distance    float64 // meter
}

func NewRouteLine(origin, destination string, coords []geo.Coordinate, distance float64) RouteLine {
	return RouteLine{
		Origin:      origin,
		Destination: destination,
		Coordinates: coords,
		Distance:    distance,
	}
}

func (r RouteLine) GetName() string {
	return fmt.Sprintf("%s -> %s", r.Origin, r.Destination)
}

// WriteKML. one placemark per named point and one linestring placemark per route.
func WriteKML(w io.Writer, title string, points []datastructure.NamedPoint, routes []RouteLine) error {
	elements := make([]kml.Element, 0, len(points)+len(routes)+1)
	elements = append(elements, kml.Name(title))

	for _, p := range points {
		c := p.GetCoordinate()
		elements = append(elements, kml.Placemark(
			kml.Name(p.GetName()),
			kml.Description(p.GetCategory().String()),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: c.Lon, Lat: c.Lat}),
			),
		))
	}

	for _, r := range routes {
		coords := make([]kml.Coordinate, len(r.Coordinates))
		for i, c := range r.Coordinates {
			coords[i] = kml.Coordinate{Lon: c.Lon, Lat: c.Lat}
		}
		elements = append(elements, kml.Placemark(
			kml.Name(r.GetName()),
			kml.Description(fmt.Sprintf("%.1f m", r.Distance)),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coords...),
			),
		))
	}

	return kml.KML(kml.Document(elements...)).WriteIndent(w, "", "  ")
}

// FeatureCollection. points as Point features (name, category), routes as LineString features
// (origin, destination, distance). geojson positions are lon, lat.
func FeatureCollection(points []datastructure.NamedPoint, routes []RouteLine) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range points {
		c := p.GetCoordinate()
		f := geojson.NewFeature(orb.Point{c.Lon, c.Lat})
		f.Properties["name"] = p.GetName()
		f.Properties["category"] = p.GetCategory().String()
		fc.Append(f)
	}

	for _, r := range routes {
		line := make(orb.LineString, len(r.Coordinates))
		for i, c := range r.Coordinates {
			line[i] = orb.Point{c.Lon, c.Lat}
		}
		f := geojson.NewFeature(line)
		f.Properties["origin"] = r.Origin
		f.Properties["destination"] = r.Destination
		f.Properties["distance"] = r.Distance
		fc.Append(f)
	}

	return fc
}

func WriteGeoJSON(w io.Writer, points []datastructure.NamedPoint, routes []RouteLine) error {
	bb, err := FeatureCollection(points, routes).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(bb)
	return err
}
