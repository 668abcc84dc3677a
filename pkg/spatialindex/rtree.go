package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. r-tree over the bounding boxes of the road segments of a graph.
// read-only after Build, safe for concurrent SearchWithinRadius.
type Rtree struct {
	tr   *rtree.RTreeG[datastructure.Index]
	size int
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree, each leaf is the bounding box of a road segment padded by boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("segments", graph.NumberOfSegments()))

	n := graph.NumberOfSegments()
	for i, s := range graph.GetSegments() {
		if n >= 10 && i%(n/10) == 0 {
			log.Debug("Building R-tree spatial index...", zap.Float64("progress", 100*float64(i)/float64(n)))
		}

		from, to := s.GetStart(), s.GetEnd()

		lowerFromLat, lowerFromLon := geo.GetDestinationPoint(from.Lat, from.Lon, 225, boundingBoxRadius)
		upperFromLat, upperFromLon := geo.GetDestinationPoint(from.Lat, from.Lon, 45, boundingBoxRadius)

		lowerToLat, lowerToLon := geo.GetDestinationPoint(to.Lat, to.Lon, 225, boundingBoxRadius)
		upperToLat, upperToLon := geo.GetDestinationPoint(to.Lat, to.Lon, 45, boundingBoxRadius)

		minLat := math.Min(lowerFromLat, lowerToLat)
		minLon := math.Min(lowerFromLon, lowerToLon)
		maxLat := math.Max(upperFromLat, upperToLat)
		maxLon := math.Max(upperFromLon, upperToLon)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat}, datastructure.Index(i))
		rt.size++
	}

	log.Info("R-tree spatial index built.")
}

// SearchWithinRadius. ids of every segment whose bounding box intersects the square of half side radius (in km)
// centered at (qLat, qLon). every segment passing within radius of the query point is in the result.
// ids are returned in ascending order.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index {
	lowerLat, _ := geo.GetDestinationPoint(qLat, qLon, 180, radius)
	upperLat, _ := geo.GetDestinationPoint(qLat, qLon, 0, radius)

	// widest longitude span is at the latitude closest to a pole
	widestLat := math.Max(math.Abs(lowerLat), math.Abs(upperLat))
	_, westLon := geo.GetDestinationPoint(widestLat, qLon, 270, radius)
	_, eastLon := geo.GetDestinationPoint(widestLat, qLon, 90, radius)

	results := make([]datastructure.Index, 0, 10)
	rt.tr.Search([2]float64{westLon, lowerLat}, [2]float64{eastLon, upperLat},
		func(min, max [2]float64, data datastructure.Index) bool {
			results = append(results, data)
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		return results[i] < results[j]
	})
	return results
}

func (rt *Rtree) Len() int {
	return rt.size
}
