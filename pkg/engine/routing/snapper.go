package routing

import (
	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
)

// SnapResult. vertex a query point resolves to and the distance the point had to travel to get there.
type SnapResult struct {
	Node      da.Index
	Distance  float64  // meter, access distance from the query point to Node
	Snapped   bool     // Node was reached by projecting onto a segment
	SegmentId da.Index // segment projected onto, da.INVALID_SEGMENT_ID if not Snapped
}

// Snapper. finds the road segment nearest to a point and splices the projection into a QueryGraph.
type Snapper struct {
	graph        *da.Graph
	index        SegmentIndex
	searchRadius float64 // km
}

func NewSnapper(graph *da.Graph, index SegmentIndex, searchRadius float64) *Snapper {
	return &Snapper{
		graph:        graph,
		index:        index,
		searchRadius: searchRadius,
	}
}

// Snap. point equal to a connected vertex of q resolves to that vertex, otherwise see SnapToRoad.
// an isolated named point has no edges, so its coordinate (or a query at it) is snapped onto the nearest road, not returned as is.
func (s *Snapper) Snap(q *QueryGraph, point geo.Coordinate) (SnapResult, error) {
	if !point.IsValid() {
		return SnapResult{}, util.WrapErrorf(pkg.ErrUnknownNode, util.ErrBadParamInput,
			"invalid coordinate (%f, %f)", point.Lat, point.Lon)
	}

	if v, ok := q.FindVertex(point); ok && !q.IsIsolated(v) {
		return SnapResult{Node: v, SegmentId: da.INVALID_SEGMENT_ID}, nil
	}

	return s.SnapToRoad(q, point)
}

// SnapToRoad. project point onto the nearest road segment (ties -> lowest segment id) and splice the
// projection into q.
func (s *Snapper) SnapToRoad(q *QueryGraph, point geo.Coordinate) (SnapResult, error) {
	if s.graph.NumberOfSegments() == 0 {
		return SnapResult{}, util.WrapErrorf(pkg.ErrEmptySegmentList, util.ErrNotFound,
			"can't snap (%f, %f)", point.Lat, point.Lon)
	}

	segmentId, proj := s.NearestSegment(point)
	node := q.SplitSegment(segmentId, proj)

	return SnapResult{
		Node:      node,
		Distance:  proj.Distance,
		Snapped:   true,
		SegmentId: segmentId,
	}, nil
}

// NearestSegment. globally nearest segment to point. candidates come from the segment index, if the best
// candidate is farther than the search radius a segment outside the searched box may be nearer and every
// segment is scanned.
func (s *Snapper) NearestSegment(point geo.Coordinate) (da.Index, geo.Projection) {
	if s.index != nil {
		candidates := s.index.SearchWithinRadius(point.Lat, point.Lon, s.searchRadius)
		if len(candidates) > 0 {
			best, bestProj := s.nearestOf(point, candidates)
			if bestProj.Distance <= s.searchRadius*1000*0.99 {
				return best, bestProj
			}
		}
	}

	return s.nearestLinear(point)
}

func (s *Snapper) nearestOf(point geo.Coordinate, candidates []da.Index) (da.Index, geo.Projection) {
	best := da.INVALID_SEGMENT_ID
	var bestProj geo.Projection
	for _, id := range candidates {
		proj := s.project(point, id)
		if best == da.INVALID_SEGMENT_ID || proj.Distance < bestProj.Distance ||
			(proj.Distance == bestProj.Distance && id < best) {
			best, bestProj = id, proj
		}
	}
	return best, bestProj
}

func (s *Snapper) nearestLinear(point geo.Coordinate) (da.Index, geo.Projection) {
	best := da.INVALID_SEGMENT_ID
	var bestProj geo.Projection
	for id := da.Index(0); id < da.Index(s.graph.NumberOfSegments()); id++ {
		proj := s.project(point, id)
		if best == da.INVALID_SEGMENT_ID || proj.Distance < bestProj.Distance {
			best, bestProj = id, proj
		}
	}
	return best, bestProj
}

func (s *Snapper) project(point geo.Coordinate, segmentId da.Index) geo.Projection {
	segment := s.graph.GetSegment(segmentId)
	return geo.ProjectPointToSegment(point, segment.GetStart(), segment.GetEnd())
}
