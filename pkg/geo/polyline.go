package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. google encoded polyline of the path coordinates
func PolylineFromCoords(path []Coordinate) string {
	s := make([][]float64, 0, len(path))
	for _, p := range path {
		s = append(s, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(s))
}

func CoordsFromPolyline(encoded string) ([]Coordinate, error) {
	s, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, 0, len(s))
	for _, c := range s {
		coords = append(coords, NewCoordinate(c[0], c[1]))
	}
	return coords, nil
}
