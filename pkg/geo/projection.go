package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/campnav/pkg/util"
)

// Projection. foot of the perpendicular from a query point to a segment.
// T is the parametric position along the segment, always in [0,1].
type Projection struct {
	Closest  Coordinate
	T        float64
	Distance float64 // meter, query point to Closest
}

// toPlane. local equirectangular plane around refLat, good enough for segments of a few hundred meters
func toPlane(c Coordinate, cosRefLat float64) r2.Point {
	return r2.Point{X: c.Lon * cosRefLat, Y: c.Lat}
}

// ProjectPointToSegment. clamped projection of point onto segment (start, end).
// the projection parameter is computed in a locally flat plane, the distance is geodesic.
func ProjectPointToSegment(point, start, end Coordinate) Projection {
	cosRefLat := math.Cos(util.DegreeToRadians(start.Lat))

	a := toPlane(start, cosRefLat)
	b := toPlane(end, cosRefLat)
	p := toPlane(point, cosRefLat)

	ab := b.Sub(a)
	denom := ab.Dot(ab)

	t := 0.0
	if denom > 0 {
		t = p.Sub(a).Dot(ab) / denom
	}
	t = math.Max(0, math.Min(1, t))

	closest := Interpolate(start, end, t)
	return Projection{
		Closest:  closest,
		T:        t,
		Distance: Distance(point, closest),
	}
}

// Interpolate. start + t*(end-start) in degrees. t=0 and t=1 return the endpoints unchanged.
func Interpolate(start, end Coordinate, t float64) Coordinate {
	switch t {
	case 0:
		return start
	case 1:
		return end
	}
	return NewCoordinate(start.Lat+t*(end.Lat-start.Lat), start.Lon+t*(end.Lon-start.Lon))
}
