package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/http"
	"github.com/lintang-b-s/campnav/pkg/http/usecases"
	"github.com/lintang-b-s/campnav/pkg/logger"
	"github.com/lintang-b-s/campnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config_dir", "./data", "directory containing config.yaml")
	networkFile  = flag.String("network", "", "road network file (.yaml, .snapshot, .osm, .pbf), overrides NETWORK_FILE")
	useRateLimit = flag.Bool("rate_limit", false, "enable the api rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(*configDir); err != nil {
		logger.Fatal("can't read config", zap.Error(err))
	}
	if *networkFile != "" {
		viper.Set("NETWORK_FILE", *networkFile)
	}

	campnavEngine, err := engine.NewEngine(viper.GetString("NETWORK_FILE"), viper.GetFloat64("SEARCH_RADIUS"),
		viper.GetFloat64("LEAF_BOUNDING_BOX_RADIUS"), logger)
	if err != nil {
		logger.Fatal("can't build routing engine", zap.Error(err))
	}

	routingService, err := usecases.NewRoutingService(logger, campnavEngine.GetRoutingEngine(),
		campnavEngine.GetSummary(), viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		logger.Fatal("can't create routing service", zap.Error(err))
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	api, err = api.Use(ctx, logger, *useRateLimit, routingService)
	if err != nil {
		logger.Fatal("can't start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("api stopped with error", zap.Error(err))
	}
	logger.Info("campnav Routing Engine Server Stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
