package datastructure

import (
	"math"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
)

type Index uint32

const (
	INVALID_VERTEX_ID  Index = math.MaxUint32
	INVALID_SEGMENT_ID Index = math.MaxUint32
)

type Vertex struct {
	lat  float64
	lon  float64
	id   Index
	name string // first named point placed on this vertex, empty for plain road endpoints
}

func NewVertex(lat, lon float64, id Index) *Vertex {
	return &Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(v.lat, v.lon)
}

func (v *Vertex) GetName() string {
	return v.name
}

func (v *Vertex) SetName(name string) {
	v.name = name
}

// OutEdge. directed edge tail->head, weight is the geodesic length in meter
type OutEdge struct {
	weight    float64
	edgeId    Index
	head      Index
	segmentId Index // index into Graph.segments of the road segment this edge runs along
}

// InEdge. reverse view of an OutEdge, stored at the head
type InEdge struct {
	weight    float64
	edgeId    Index
	tail      Index
	segmentId Index
}

func NewOutEdge(edgeId, head Index, weight float64, segmentId Index) *OutEdge {
	return &OutEdge{
		edgeId:    edgeId,
		head:      head,
		weight:    weight,
		segmentId: segmentId,
	}
}

func NewInEdge(edgeId, tail Index, weight float64, segmentId Index) *InEdge {
	return &InEdge{
		edgeId:    edgeId,
		tail:      tail,
		weight:    weight,
		segmentId: segmentId,
	}
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetSegmentId() Index {
	return e.segmentId
}

func (e *InEdge) GetWeight() float64 {
	return e.weight
}

func (e *InEdge) GetTail() Index {
	return e.tail
}

func (e *InEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *InEdge) GetSegmentId() Index {
	return e.segmentId
}

type RejectedSegment struct {
	segment RoadSegment
	reason  string
}

func (r RejectedSegment) GetSegment() RoadSegment {
	return r.segment
}

func (r RejectedSegment) GetReason() string {
	return r.reason
}

type coordKey struct {
	lat, lon int64
}

func newCoordKey(c geo.Coordinate) coordKey {
	return coordKey{
		lat: int64(math.Floor(c.Lat / pkg.COORD_EPS)),
		lon: int64(math.Floor(c.Lon / pkg.COORD_EPS)),
	}
}

// Graph. directed road network graph. vertices are named points and distinct segment endpoints,
// edges follow the road segments (forward only for one-way, both directions for two-way).
// a built Graph is never mutated, it is safe to share between concurrent queries.
type Graph struct {
	vertices         []*Vertex
	outEdges         [][]*OutEdge // adjacency list, in segment order
	inEdges          [][]*InEdge
	segments         []RoadSegment
	segmentEndpoints [][2]Index // start & end vertex of segments[i]
	rejected         []RejectedSegment
	nameIndex        map[string]Index
	coordIndex       map[coordKey][]Index
	namedPoints      []NamedPoint
	numEdges         int
	boundingBox      *BoundingBox
}

func newGraph() *Graph {
	return &Graph{
		vertices:    make([]*Vertex, 0),
		outEdges:    make([][]*OutEdge, 0),
		inEdges:     make([][]*InEdge, 0),
		segments:    make([]RoadSegment, 0),
		nameIndex:   make(map[string]Index),
		coordIndex:  make(map[coordKey][]Index),
		namedPoints: make([]NamedPoint, 0),
		boundingBox: NewEmptyBoundingBox(),
	}
}

// BuildGraph. build the road network graph from named points and road segments.
// zero-length segments are rejected (see GetRejectedSegments), the build only fails with pkg.ErrInvalidSegment
// if every segment is rejected. two points with the same name at different coordinates fail with pkg.ErrDuplicateNode.
func BuildGraph(points []NamedPoint, segments []RoadSegment) (*Graph, error) {
	g := newGraph()

	for _, p := range points {
		if !p.coord.IsValid() {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "named point %q has invalid coordinate (%f, %f)",
				p.name, p.coord.Lat, p.coord.Lon)
		}

		if v, ok := g.nameIndex[p.name]; ok {
			if g.vertices[v].GetCoordinate().Eq(p.coord) {
				continue
			}
			return nil, util.WrapErrorf(pkg.ErrDuplicateNode, util.ErrBadParamInput, "named point %q", p.name)
		}

		v := g.addOrGetVertex(p.coord)
		if g.vertices[v].name == "" {
			g.vertices[v].SetName(p.name)
		}
		g.nameIndex[p.name] = v
		g.namedPoints = append(g.namedPoints, p)
	}

	for _, s := range segments {
		if !s.IsValid() {
			g.rejected = append(g.rejected, RejectedSegment{segment: s, reason: invalidReason(s)})
			continue
		}

		u := g.addOrGetVertex(s.start)
		v := g.addOrGetVertex(s.end)
		if u == v {
			g.rejected = append(g.rejected, RejectedSegment{segment: s, reason: "zero-length segment"})
			continue
		}

		segmentId := Index(len(g.segments))
		g.segments = append(g.segments, s)
		g.segmentEndpoints = append(g.segmentEndpoints, [2]Index{u, v})

		weight := s.GetLength()
		g.addEdge(u, v, weight, segmentId)
		if s.IsTwoWay() {
			g.addEdge(v, u, weight, segmentId)
		}
	}

	if len(segments) > 0 && len(g.segments) == 0 {
		return nil, util.WrapErrorf(pkg.ErrInvalidSegment, util.ErrBadParamInput, "all %d road segments are invalid",
			len(segments))
	}

	return g, nil
}

func invalidReason(s RoadSegment) string {
	if !s.start.IsValid() || !s.end.IsValid() {
		return "invalid coordinate"
	}
	return "zero-length segment"
}

func (g *Graph) addOrGetVertex(c geo.Coordinate) Index {
	if v, ok := g.FindVertex(c); ok {
		return v
	}

	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, NewVertex(c.Lat, c.Lon, id))
	g.outEdges = append(g.outEdges, make([]*OutEdge, 0))
	g.inEdges = append(g.inEdges, make([]*InEdge, 0))

	key := newCoordKey(c)
	g.coordIndex[key] = append(g.coordIndex[key], id)
	g.boundingBox.Extend(c.Lat, c.Lon)
	return id
}

func (g *Graph) addEdge(u, v Index, weight float64, segmentId Index) {
	edgeId := Index(g.numEdges)
	g.outEdges[u] = append(g.outEdges[u], NewOutEdge(edgeId, v, weight, segmentId))
	g.inEdges[v] = append(g.inEdges[v], NewInEdge(edgeId, u, weight, segmentId))
	g.numEdges++
}

// FindVertex. vertex at c within pkg.COORD_EPS, lowest id wins if several match.
func (g *Graph) FindVertex(c geo.Coordinate) (Index, bool) {
	key := newCoordKey(c)
	found := INVALID_VERTEX_ID
	for dLat := int64(-1); dLat <= 1; dLat++ {
		for dLon := int64(-1); dLon <= 1; dLon++ {
			for _, v := range g.coordIndex[coordKey{key.lat + dLat, key.lon + dLon}] {
				if v < found && g.vertices[v].GetCoordinate().Eq(c) {
					found = v
				}
			}
		}
	}
	return found, found != INVALID_VERTEX_ID
}

func (g *Graph) GetVertexByName(name string) (Index, bool) {
	v, ok := g.nameIndex[name]
	return v, ok
}

func (g *Graph) GetVertex(u Index) *Vertex {
	return g.vertices[u]
}

func (g *Graph) GetVertexCoordinate(u Index) geo.Coordinate {
	return g.vertices[u].GetCoordinate()
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for _, e := range g.outEdges[u] {
		handle(e)
	}
}

func (g *Graph) ForInEdgesOf(u Index, handle func(e *InEdge)) {
	for _, e := range g.inEdges[u] {
		handle(e)
	}
}

// GetOutEdges. read-only view of the out edges of u, callers must not modify it.
func (g *Graph) GetOutEdges(u Index) []*OutEdge {
	return g.outEdges[u]
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.outEdges[u])
}

func (g *Graph) GetInDegree(u Index) int {
	return len(g.inEdges[u])
}

// IsIsolated. no road touches u (typically a named point away from every road).
func (g *Graph) IsIsolated(u Index) bool {
	return len(g.outEdges[u]) == 0 && len(g.inEdges[u]) == 0
}

func (g *Graph) HasEdge(u, v Index) bool {
	for _, e := range g.outEdges[u] {
		if e.head == v {
			return true
		}
	}
	return false
}

func (g *Graph) GetSegments() []RoadSegment {
	return g.segments
}

func (g *Graph) NumberOfSegments() int {
	return len(g.segments)
}

func (g *Graph) GetSegment(segmentId Index) RoadSegment {
	return g.segments[segmentId]
}

// GetSegmentEndpoints. start & end vertex of the segment
func (g *Graph) GetSegmentEndpoints(segmentId Index) (Index, Index) {
	return g.segmentEndpoints[segmentId][0], g.segmentEndpoints[segmentId][1]
}

func (g *Graph) GetRejectedSegments() []RejectedSegment {
	return g.rejected
}

// GetNamedPoints. named points in input order (exact repeats dropped)
func (g *Graph) GetNamedPoints() []NamedPoint {
	return g.namedPoints
}

func (g *Graph) GetBoundingBox() *BoundingBox {
	return g.boundingBox
}
