package routing

import (
	"fmt"
	"sync"

	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
	"go.uber.org/zap"
)

// Endpoint. origin or destination of a routing request, either a named point or a raw coordinate.
type Endpoint struct {
	name  string
	coord geo.Coordinate
	named bool
}

func NewNamedEndpoint(name string) Endpoint {
	return Endpoint{name: name, named: true}
}

func NewCoordinateEndpoint(lat, lon float64) Endpoint {
	return Endpoint{coord: geo.NewCoordinate(lat, lon)}
}

func (e Endpoint) IsNamed() bool {
	return e.named
}

func (e Endpoint) GetName() string {
	return e.name
}

func (e Endpoint) GetCoordinate() geo.Coordinate {
	return e.coord
}

func (e Endpoint) String() string {
	if e.named {
		return e.name
	}
	return fmt.Sprintf("(%.7f, %.7f)", e.coord.Lat, e.coord.Lon)
}

type Route struct {
	Coordinates       []geo.Coordinate
	NodeNames         []string // named points passed through, in travel order
	PathDistance      float64  // meter, along the road network
	OriginAccess      float64  // meter, origin to the vertex it snapped to
	DestinationAccess float64
	TotalDistance     float64
}

// Engine. answers shortest path queries between endpoints on a shared read-only road network.
type Engine struct {
	graph   *da.Graph
	snapper *Snapper
	logger  *zap.Logger

	dijkstraPool sync.Pool
}

func NewEngine(graph *da.Graph, index SegmentIndex, searchRadius float64, logger *zap.Logger) *Engine {
	return &Engine{
		graph:   graph,
		snapper: NewSnapper(graph, index, searchRadius),
		logger:  logger,
		dijkstraPool: sync.Pool{
			New: func() any {
				return NewDijkstra()
			},
		},
	}
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

func (e *Engine) GetSnapper() *Snapper {
	return e.snapper
}

// ShortestPath. shortest route between origin and destination. each call works on its own QueryGraph,
// so it is safe for concurrent use.
func (e *Engine) ShortestPath(origin, destination Endpoint) (*Route, error) {
	q := NewQueryGraph(e.graph)

	originSnap, err := e.resolve(q, origin)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "origin %s", origin)
	}
	destinationSnap, err := e.resolve(q, destination)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "destination %s", destination)
	}

	dijkstra := e.dijkstraPool.Get().(*Dijkstra)
	defer e.dijkstraPool.Put(dijkstra)

	path, err := dijkstra.ShortestPath(q, originSnap.Node, destinationSnap.Node)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "route %s -> %s", origin, destination)
	}

	e.logger.Debug("route found",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.Float64("distance", path.Distance),
		zap.Int("settled", dijkstra.GetNumSettledNodes()),
		zap.Int("snapped_nodes", q.NumberOfVirtualVertices()),
	)

	names := make([]string, 0, 4)
	for _, v := range path.Vertices {
		if name := q.GetVertexName(v); name != "" {
			names = append(names, name)
		}
	}

	return &Route{
		Coordinates:       path.Coordinates,
		NodeNames:         names,
		PathDistance:      path.Distance,
		OriginAccess:      originSnap.Distance,
		DestinationAccess: destinationSnap.Distance,
		TotalDistance:     originSnap.Distance + path.Distance + destinationSnap.Distance,
	}, nil
}

// resolve. named points resolve to their vertex, isolated named points and raw coordinates are snapped
// onto the road network.
func (e *Engine) resolve(q *QueryGraph, endpoint Endpoint) (SnapResult, error) {
	if !endpoint.IsNamed() {
		return e.snapper.Snap(q, endpoint.GetCoordinate())
	}

	v, ok := e.graph.GetVertexByName(endpoint.GetName())
	if !ok {
		return SnapResult{}, util.WrapErrorf(pkg.ErrUnknownNode, util.ErrNotFound, "no named point %q",
			endpoint.GetName())
	}

	if q.IsIsolated(v) {
		return e.snapper.SnapToRoad(q, q.GetVertexCoordinate(v))
	}
	return SnapResult{Node: v, SegmentId: da.INVALID_SEGMENT_ID}, nil
}
