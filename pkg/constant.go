package pkg

import "errors"

// enum of road direction
type RoadDirection uint8

const (
	ONE_WAY RoadDirection = iota
	TWO_WAY
)

func (d RoadDirection) String() string {
	switch d {
	case ONE_WAY:
		return "one-way"
	default:
		return "two-way"
	}
}

// GetRoadDirection. parse road_direction value of campsite data ("one-way" / "two-way").
func GetRoadDirection(direction string) (RoadDirection, bool) {
	switch direction {
	case "one-way", "oneway", "one_way":
		return ONE_WAY, true
	case "two-way", "twoway", "two_way", "":
		return TWO_WAY, true
	default:
		return TWO_WAY, false
	}
}

// enum of named point category (source column of the campsite data)
type PointCategory uint8

const (
	BUNGALOW PointCategory = iota
	INTERSECTION
	SPECIAL
	ROAD
	OTHER
)

func (c PointCategory) String() string {
	switch c {
	case BUNGALOW:
		return "bungalow"
	case INTERSECTION:
		return "intersection"
	case SPECIAL:
		return "special"
	case ROAD:
		return "road"
	default:
		return "other"
	}
}

func GetPointCategory(category string) PointCategory {
	switch category {
	case "bungalow":
		return BUNGALOW
	case "intersection":
		return INTERSECTION
	case "special":
		return SPECIAL
	case "road":
		return ROAD
	default:
		return OTHER
	}
}

const (
	INF_WEIGHT float64 = 1e15

	// two coordinates closer than COORD_EPS degrees (on both axes) are the same graph node
	COORD_EPS = 1e-9
)

var (
	ErrInvalidSegment   = errors.New("invalid road segment")
	ErrDuplicateNode    = errors.New("duplicate named point")
	ErrUnknownNode      = errors.New("unknown node")
	ErrEmptySegmentList = errors.New("no road segments to snap to")
	ErrNoPathFound      = errors.New("no path found")
)
