package routing

import (
	"sort"

	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
)

// splitPoint. a vertex strictly inside a road segment at parametric position t
type splitPoint struct {
	t      float64
	vertex da.Index
}

// QueryGraph. per-query overlay on top of the read-only base graph.
// snapped nodes get vertex ids after the base vertices, only the adjacency of vertices touched by a split
// is stored in the overlay, every other lookup falls through to the base graph.
type QueryGraph struct {
	base *da.Graph

	virtualCoords  []geo.Coordinate
	virtualSegment []da.Index

	splits      map[da.Index][]splitPoint // segment id -> split points sorted by t
	outOverride map[da.Index][]*da.OutEdge
	nextEdgeId  da.Index
}

func NewQueryGraph(base *da.Graph) *QueryGraph {
	return &QueryGraph{
		base:           base,
		virtualCoords:  make([]geo.Coordinate, 0, 2),
		virtualSegment: make([]da.Index, 0, 2),
		splits:         make(map[da.Index][]splitPoint),
		outOverride:    make(map[da.Index][]*da.OutEdge),
		nextEdgeId:     da.Index(base.NumberOfEdges()),
	}
}

func (q *QueryGraph) GetBaseGraph() *da.Graph {
	return q.base
}

func (q *QueryGraph) NumberOfVertices() int {
	return q.base.NumberOfVertices() + len(q.virtualCoords)
}

func (q *QueryGraph) NumberOfVirtualVertices() int {
	return len(q.virtualCoords)
}

func (q *QueryGraph) IsVirtual(u da.Index) bool {
	return int(u) >= q.base.NumberOfVertices()
}

func (q *QueryGraph) HasVertex(u da.Index) bool {
	return int(u) < q.NumberOfVertices()
}

func (q *QueryGraph) GetVertexCoordinate(u da.Index) geo.Coordinate {
	if q.IsVirtual(u) {
		return q.virtualCoords[int(u)-q.base.NumberOfVertices()]
	}
	return q.base.GetVertexCoordinate(u)
}

// GetVertexName. name of the named point on u, empty for unnamed and snapped vertices.
func (q *QueryGraph) GetVertexName(u da.Index) string {
	if q.IsVirtual(u) {
		return ""
	}
	return q.base.GetVertex(u).GetName()
}

// FindVertex. base vertex or snapped vertex at c within pkg.COORD_EPS. base vertices win.
func (q *QueryGraph) FindVertex(c geo.Coordinate) (da.Index, bool) {
	if v, ok := q.base.FindVertex(c); ok {
		return v, true
	}
	for i, vc := range q.virtualCoords {
		if vc.Eq(c) {
			return da.Index(q.base.NumberOfVertices() + i), true
		}
	}
	return da.INVALID_VERTEX_ID, false
}

func (q *QueryGraph) IsIsolated(u da.Index) bool {
	if q.IsVirtual(u) {
		return false
	}
	return q.base.IsIsolated(u)
}

func (q *QueryGraph) ForOutEdgesOf(u da.Index, handle func(e *da.OutEdge)) {
	if edges, ok := q.outOverride[u]; ok {
		for _, e := range edges {
			handle(e)
		}
		return
	}
	q.base.ForOutEdgesOf(u, handle)
}

func (q *QueryGraph) GetOutDegree(u da.Index) int {
	if edges, ok := q.outOverride[u]; ok {
		return len(edges)
	}
	return q.base.GetOutDegree(u)
}

func (q *QueryGraph) HasEdge(u, v da.Index) bool {
	found := false
	q.ForOutEdgesOf(u, func(e *da.OutEdge) {
		if e.GetHead() == v {
			found = true
		}
	})
	return found
}

// SplitSegment. place a vertex on segment segmentId at the projection proj and return it.
// an endpoint or an existing split at the same coordinate is reused, otherwise a snapped vertex is added
// and the edges of the sub-interval containing it are replaced by two edges through the new vertex.
// the weights of the pieces add up to the segment weight.
func (q *QueryGraph) SplitSegment(segmentId da.Index, proj geo.Projection) da.Index {
	start, end := q.base.GetSegmentEndpoints(segmentId)
	segment := q.base.GetSegment(segmentId)

	if proj.T <= 0 || proj.Closest.Eq(segment.GetStart()) {
		return start
	}
	if proj.T >= 1 || proj.Closest.Eq(segment.GetEnd()) {
		return end
	}

	points := q.splits[segmentId]
	for _, sp := range points {
		if da.Eq(sp.t, proj.T) || q.GetVertexCoordinate(sp.vertex).Eq(proj.Closest) {
			return sp.vertex
		}
	}

	w := da.Index(q.NumberOfVertices())
	q.virtualCoords = append(q.virtualCoords, proj.Closest)
	q.virtualSegment = append(q.virtualSegment, segmentId)

	points = append(points, splitPoint{t: proj.T, vertex: w})
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].t < points[j].t
	})
	q.splits[segmentId] = points

	q.rebuildBaseEndpoint(start)
	q.rebuildBaseEndpoint(end)
	q.rebuildSplitPoints(segmentId)
	return w
}

// rebuildBaseEndpoint. out edges of base vertex u with every edge along a split segment redirected to
// the nearest split point of that segment. edge order of the base graph is kept.
func (q *QueryGraph) rebuildBaseEndpoint(u da.Index) {
	base := q.base.GetOutEdges(u)
	edges := make([]*da.OutEdge, 0, len(base))
	for _, e := range base {
		points, ok := q.splits[e.GetSegmentId()]
		if !ok {
			edges = append(edges, e)
			continue
		}

		segmentStart, _ := q.base.GetSegmentEndpoints(e.GetSegmentId())
		length := e.GetWeight()
		if u == segmentStart {
			first := points[0]
			edges = append(edges, q.newEdge(first.vertex, length*first.t, e.GetSegmentId()))
		} else {
			last := points[len(points)-1]
			edges = append(edges, q.newEdge(last.vertex, length*(1-last.t), e.GetSegmentId()))
		}
	}
	q.outOverride[u] = edges
}

// rebuildSplitPoints. out edges of every split point of the segment: forward to the next vertex along the
// segment, and back to the previous one if the segment is two-way.
func (q *QueryGraph) rebuildSplitPoints(segmentId da.Index) {
	start, end := q.base.GetSegmentEndpoints(segmentId)
	segment := q.base.GetSegment(segmentId)
	length := segment.GetLength()
	points := q.splits[segmentId]

	for i, sp := range points {
		nextVertex, nextT := end, 1.0
		if i+1 < len(points) {
			nextVertex, nextT = points[i+1].vertex, points[i+1].t
		}
		prevVertex, prevT := start, 0.0
		if i > 0 {
			prevVertex, prevT = points[i-1].vertex, points[i-1].t
		}

		edges := make([]*da.OutEdge, 0, 2)
		edges = append(edges, q.newEdge(nextVertex, length*(nextT-sp.t), segmentId))
		if segment.GetDirection() == pkg.TWO_WAY {
			edges = append(edges, q.newEdge(prevVertex, length*(sp.t-prevT), segmentId))
		}
		q.outOverride[sp.vertex] = edges
	}
}

func (q *QueryGraph) newEdge(head da.Index, weight float64, segmentId da.Index) *da.OutEdge {
	e := da.NewOutEdge(q.nextEdgeId, head, weight, segmentId)
	q.nextEdgeId++
	return e
}
