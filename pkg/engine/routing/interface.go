package routing

import (
	"github.com/lintang-b-s/campnav/pkg/datastructure"
)

type SegmentIndex interface {
	SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index
}
