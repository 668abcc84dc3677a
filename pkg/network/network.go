package network

import (
	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
)

// PointSpec. named point of the campsite data (reception, bungalows, intersections...)
type PointSpec struct {
	Name     string  `mapstructure:"name" yaml:"name" json:"name" validate:"required"`
	Lat      float64 `mapstructure:"lat" yaml:"lat" json:"lat" validate:"latitude"`
	Lon      float64 `mapstructure:"lon" yaml:"lon" json:"lon" validate:"longitude"`
	Category string  `mapstructure:"category" yaml:"category,omitempty" json:"category,omitempty" validate:"omitempty,oneof=bungalow intersection special road other"`
}

// RoadSpec. road polyline, Points are (lat, lon) pairs in travel order for one-way roads.
type RoadSpec struct {
	Name      string       `mapstructure:"name" yaml:"name" json:"name" validate:"required"`
	Points    [][2]float64 `mapstructure:"points" yaml:"points,flow" json:"points" validate:"min=2"`
	Direction string       `mapstructure:"direction" yaml:"direction" json:"direction" validate:"omitempty,oneof=one-way two-way oneway twoway one_way two_way"`
}

type Network struct {
	Points []PointSpec `mapstructure:"points" yaml:"points" json:"points" validate:"dive"`
	Roads  []RoadSpec  `mapstructure:"roads" yaml:"roads" json:"roads" validate:"dive"`
}

var validate = util.NewValidator()

func (n *Network) Validate() error {
	return validate.Struct(n)
}

// Decompose. named points and road segments ready for datastructure.BuildGraph.
// road coordinates are not checked here, BuildGraph rejects the segments they produce.
func (n *Network) Decompose() ([]datastructure.NamedPoint, []datastructure.RoadSegment) {
	points := make([]datastructure.NamedPoint, 0, len(n.Points))
	for _, p := range n.Points {
		points = append(points, datastructure.NewNamedPoint(p.Name, p.Lat, p.Lon, pkg.GetPointCategory(p.Category)))
	}

	return points, datastructure.DecomposeRoads(n.GetRoads())
}

func (n *Network) GetRoads() []datastructure.Road {
	roads := make([]datastructure.Road, 0, len(n.Roads))
	for _, r := range n.Roads {
		coords := make([]geo.Coordinate, 0, len(r.Points))
		for _, latLon := range r.Points {
			coords = append(coords, geo.NewCoordinate(latLon[0], latLon[1]))
		}
		direction, _ := pkg.GetRoadDirection(r.Direction)
		roads = append(roads, datastructure.NewRoad(r.Name, coords, direction))
	}
	return roads
}

// FromCampsite. network definition of named points and roads read from another source (openstreetmap)
func FromCampsite(points []datastructure.NamedPoint, roads []datastructure.Road) *Network {
	n := &Network{
		Points: make([]PointSpec, 0, len(points)),
		Roads:  make([]RoadSpec, 0, len(roads)),
	}
	for _, p := range points {
		n.Points = append(n.Points, PointSpec{
			Name:     p.GetName(),
			Lat:      p.GetCoordinate().Lat,
			Lon:      p.GetCoordinate().Lon,
			Category: p.GetCategory().String(),
		})
	}
	for _, r := range roads {
		latLons := make([][2]float64, 0, len(r.GetPoints()))
		for _, c := range r.GetPoints() {
			latLons = append(latLons, [2]float64{c.Lat, c.Lon})
		}
		n.Roads = append(n.Roads, RoadSpec{
			Name:      r.GetName(),
			Points:    latLons,
			Direction: r.GetDirection().String(),
		})
	}
	return n
}
