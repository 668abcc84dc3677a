package datastructure

import (
	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/geo"
)

// NamedPoint. reception, bungalows, intersections... directionality is not meaningful for a point.
type NamedPoint struct {
	name     string
	coord    geo.Coordinate
	category pkg.PointCategory
}

func NewNamedPoint(name string, lat, lon float64, category pkg.PointCategory) NamedPoint {
	return NamedPoint{
		name:     name,
		coord:    geo.NewCoordinate(lat, lon),
		category: category,
	}
}

func (p NamedPoint) GetName() string {
	return p.name
}

func (p NamedPoint) GetCoordinate() geo.Coordinate {
	return p.coord
}

func (p NamedPoint) GetCategory() pkg.PointCategory {
	return p.category
}

// RoadSegment. straight piece of road from start to end.
// one-way segments can only be traversed start->end.
type RoadSegment struct {
	id         Index
	roadName   string
	start, end geo.Coordinate
	direction  pkg.RoadDirection
}

func NewRoadSegment(id Index, roadName string, start, end geo.Coordinate, direction pkg.RoadDirection) RoadSegment {
	return RoadSegment{
		id:        id,
		roadName:  roadName,
		start:     start,
		end:       end,
		direction: direction,
	}
}

func (s RoadSegment) GetID() Index {
	return s.id
}

func (s RoadSegment) GetRoadName() string {
	return s.roadName
}

func (s RoadSegment) GetStart() geo.Coordinate {
	return s.start
}

func (s RoadSegment) GetEnd() geo.Coordinate {
	return s.end
}

func (s RoadSegment) GetDirection() pkg.RoadDirection {
	return s.direction
}

func (s RoadSegment) IsTwoWay() bool {
	return s.direction == pkg.TWO_WAY
}

// GetLength. geodesic length in meter
func (s RoadSegment) GetLength() float64 {
	return geo.Distance(s.start, s.end)
}

// IsValid. both endpoints are valid coordinates and the segment has non-zero length.
func (s RoadSegment) IsValid() bool {
	return s.start.IsValid() && s.end.IsValid() && !s.start.Eq(s.end)
}

// Road. polyline of >= 2 waypoints with one direction for the whole road.
type Road struct {
	name      string
	points    []geo.Coordinate
	direction pkg.RoadDirection
}

func NewRoad(name string, points []geo.Coordinate, direction pkg.RoadDirection) Road {
	return Road{name: name, points: points, direction: direction}
}

func (r Road) GetName() string {
	return r.name
}

func (r Road) GetPoints() []geo.Coordinate {
	return r.points
}

func (r Road) GetDirection() pkg.RoadDirection {
	return r.direction
}

// DecomposeRoads. every road becomes a chain of consecutive segments sharing endpoints.
// segment ids follow input order, roads with less than 2 points produce no segment.
func DecomposeRoads(roads []Road) []RoadSegment {
	segments := make([]RoadSegment, 0, len(roads))
	id := Index(0)
	for _, r := range roads {
		for i := 0; i+1 < len(r.points); i++ {
			segments = append(segments, NewRoadSegment(id, r.name, r.points[i], r.points[i+1], r.direction))
			id++
		}
	}
	return segments
}
