package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/concurrent"
	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	"github.com/lintang-b-s/campnav/pkg/export"
	"github.com/lintang-b-s/campnav/pkg/logger"
	"github.com/lintang-b-s/campnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir  = flag.String("config_dir", "./data", "directory containing config.yaml")
	origin     = flag.String("origin", "Reception", "named point every route starts from")
	outDir     = flag.String("out", "./out", "output directory for routes.kml and routes.geojson")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "number of concurrent route queries")
)

type routeResult struct {
	destination string
	route       *routing.Route
	err         error
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(*configDir); err != nil {
		logger.Fatal("can't read config", zap.Error(err))
	}

	campnavEngine, err := engine.NewEngine(viper.GetString("NETWORK_FILE"), viper.GetFloat64("SEARCH_RADIUS"),
		viper.GetFloat64("LEAF_BOUNDING_BOX_RADIUS"), logger)
	if err != nil {
		logger.Fatal("can't build routing engine", zap.Error(err))
	}
	re := campnavEngine.GetRoutingEngine()
	points := re.GetGraph().GetNamedPoints()

	destinations := make([]string, 0, len(points))
	for _, p := range points {
		if p.GetName() != *origin {
			destinations = append(destinations, p.GetName())
		}
	}

	originEndpoint := routing.NewNamedEndpoint(*origin)
	results := concurrent.Map(*numWorkers, destinations, func(destination string) routeResult {
		route, err := re.ShortestPath(originEndpoint, routing.NewNamedEndpoint(destination))
		return routeResult{destination: destination, route: route, err: err}
	})

	lines := make([]export.RouteLine, 0, len(results))
	for _, res := range results {
		switch {
		case res.err == nil:
			lines = append(lines, export.NewRouteLine(*origin, res.destination, res.route.Coordinates,
				res.route.TotalDistance))
		case errors.Is(res.err, pkg.ErrNoPathFound):
			logger.Warn("destination unreachable", zap.String("origin", *origin),
				zap.String("destination", res.destination))
		default:
			logger.Fatal("route query failed", zap.String("destination", res.destination), zap.Error(res.err))
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("can't create output directory", zap.Error(err))
	}
	if err := writeFile(filepath.Join(*outDir, "routes.kml"), func(f *os.File) error {
		return export.WriteKML(f, "routes from "+*origin, points, lines)
	}); err != nil {
		logger.Fatal("can't write kml", zap.Error(err))
	}
	if err := writeFile(filepath.Join(*outDir, "routes.geojson"), func(f *os.File) error {
		return export.WriteGeoJSON(f, points, lines)
	}); err != nil {
		logger.Fatal("can't write geojson", zap.Error(err))
	}

	logger.Info("routes exported", zap.String("origin", *origin), zap.Int("routes", len(lines)),
		zap.Int("unreachable", len(destinations)-len(lines)), zap.String("out", *outDir))
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

