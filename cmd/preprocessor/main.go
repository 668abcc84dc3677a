package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/logger"
	"github.com/lintang-b-s/campnav/pkg/network"
	"go.uber.org/zap"
)

var (
	input  = flag.String("input", "./data/campsite.yaml", "road network file (.yaml, .osm, .pbf, .snapshot)")
	output = flag.String("output", "./data/campsite.snapshot", "output file, .yaml/.yml writes a network definition, anything else a compressed snapshot")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	n, err := network.Load(*input, logger)
	if err != nil {
		logger.Fatal("can't load road network", zap.String("input", *input), zap.Error(err))
	}

	// build the graph once so broken inputs fail here and not when the engine starts
	points, segments := n.Decompose()
	graph, err := datastructure.BuildGraph(points, segments)
	if err != nil {
		logger.Fatal("road network is not usable", zap.Error(err))
	}
	for _, rejected := range graph.GetRejectedSegments() {
		logger.Warn("road segment rejected", zap.String("road", rejected.GetSegment().GetRoadName()),
			zap.String("reason", rejected.GetReason()))
	}

	switch strings.ToLower(filepath.Ext(*output)) {
	case ".yaml", ".yml":
		err = network.WriteYAML(*output, n)
	default:
		err = network.WriteSnapshot(*output, n)
	}
	if err != nil {
		logger.Fatal("can't write road network", zap.String("output", *output), zap.Error(err))
	}

	logger.Sugar().Infof("Preprocessing completed successfully. %d named points, %d roads, %d vertices, %d edges written to %s",
		len(n.Points), len(n.Roads), graph.NumberOfVertices(), graph.NumberOfEdges(), *output)
}
