package engine

import (
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	"github.com/lintang-b-s/campnav/pkg/metrics"
	"github.com/lintang-b-s/campnav/pkg/network"
	"github.com/lintang-b-s/campnav/pkg/spatialindex"
	"go.uber.org/zap"
)

// NetworkSummary. size and connectivity of the loaded road network
type NetworkSummary struct {
	NumberOfVertices    int
	NumberOfEdges       int
	NumberOfSegments    int
	RejectedSegments    int
	NumberOfNamedPoints int
	NumberOfComponents  int // strongly connected components
	LargestComponent    int
}

type Engine struct {
	routingEngine *routing.Engine
	rtree         *spatialindex.Rtree
	summary       NetworkSummary
}

func (e *Engine) GetRoutingEngine() *routing.Engine {
	return e.routingEngine
}

func (e *Engine) GetRtree() *spatialindex.Rtree {
	return e.rtree
}

func (e *Engine) GetSummary() NetworkSummary {
	return e.summary
}

// NewEngine. load the campsite network from networkFile and build the routing engine on top of it.
// searchRadius & leafBoundingBoxRadius in km.
func NewEngine(networkFile string, searchRadius, leafBoundingBoxRadius float64, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading road network from ", zap.String("networkFile", networkFile))
	n, err := network.Load(networkFile, logger)
	if err != nil {
		return nil, err
	}
	return NewEngineFromNetwork(n, searchRadius, leafBoundingBoxRadius, logger)
}

func NewEngineFromNetwork(n *network.Network, searchRadius, leafBoundingBoxRadius float64,
	logger *zap.Logger) (*Engine, error) {
	points, segments := n.Decompose()

	graph, err := datastructure.BuildGraph(points, segments)
	if err != nil {
		return nil, err
	}

	for _, rejected := range graph.GetRejectedSegments() {
		s := rejected.GetSegment()
		logger.Warn("road segment rejected",
			zap.String("road", s.GetRoadName()),
			zap.Uint32("segment_id", uint32(s.GetID())),
			zap.String("reason", rejected.GetReason()))
	}

	_, components := graph.RunKosaraju()
	largest := 0
	for _, c := range components {
		largest = max(largest, len(c))
	}

	summary := NetworkSummary{
		NumberOfVertices:    graph.NumberOfVertices(),
		NumberOfEdges:       graph.NumberOfEdges(),
		NumberOfSegments:    graph.NumberOfSegments(),
		RejectedSegments:    len(graph.GetRejectedSegments()),
		NumberOfNamedPoints: len(graph.GetNamedPoints()),
		NumberOfComponents:  len(components),
		LargestComponent:    largest,
	}
	if len(components) > 1 {
		logger.Warn("road network is not strongly connected, some routes will not be found",
			zap.Int("components", len(components)), zap.Int("largest_component", largest))
	}

	metrics.NetworkSize.WithLabelValues("vertices").Set(float64(summary.NumberOfVertices))
	metrics.NetworkSize.WithLabelValues("edges").Set(float64(summary.NumberOfEdges))
	metrics.NetworkSize.WithLabelValues("segments").Set(float64(summary.NumberOfSegments))
	metrics.NetworkSize.WithLabelValues("rejected_segments").Set(float64(summary.RejectedSegments))
	metrics.NetworkSize.WithLabelValues("named_points").Set(float64(summary.NumberOfNamedPoints))
	metrics.NetworkSize.WithLabelValues("components").Set(float64(summary.NumberOfComponents))

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, leafBoundingBoxRadius, logger)

	logger.Info("road network ready",
		zap.Int("vertices", summary.NumberOfVertices),
		zap.Int("edges", summary.NumberOfEdges),
		zap.Int("segments", summary.NumberOfSegments),
		zap.Int("named_points", summary.NumberOfNamedPoints))

	return &Engine{
		routingEngine: routing.NewEngine(graph, rtree, searchRadius, logger),
		rtree:         rtree,
		summary:       summary,
	}, nil
}
