package usecases

import (
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/metrics"
	"github.com/lintang-b-s/campnav/pkg/util"
	"go.uber.org/zap"
)

type routeKey struct {
	origin, destination routing.Endpoint
}

type cachedRoute struct {
	route    *routing.Route
	polyline string
}

type RoutingService struct {
	log     *zap.Logger
	engine  RoutingEngine
	summary engine.NetworkSummary
	cache   *lru.Cache[routeKey, cachedRoute] // nil if caching is disabled
}

// NewRoutingService. cacheSize <= 0 disables the route cache.
func NewRoutingService(log *zap.Logger, routingEngine RoutingEngine, summary engine.NetworkSummary,
	cacheSize int) (*RoutingService, error) {
	rs := &RoutingService{
		log:     log,
		engine:  routingEngine,
		summary: summary,
	}
	if cacheSize > 0 {
		cache, err := lru.New[routeKey, cachedRoute](cacheSize)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "can't create route cache")
		}
		rs.cache = cache
	}
	return rs, nil
}

// ShortestPath. route between origin and destination plus its encoded polyline. the returned route
// may be shared with other callers and must not be modified.
func (rs *RoutingService) ShortestPath(origin, destination routing.Endpoint) (*routing.Route, string, error) {
	key := routeKey{origin: origin, destination: destination}
	if rs.cache != nil {
		if cached, ok := rs.cache.Get(key); ok {
			metrics.RouteCacheHitsTotal.Inc()
			metrics.RouteQueriesTotal.WithLabelValues("found").Inc()
			return cached.route, cached.polyline, nil
		}
	}

	start := time.Now()
	route, err := rs.engine.ShortestPath(origin, destination)
	metrics.RouteQueryDuration.Observe(time.Since(start).Seconds())
	metrics.RouteQueriesTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		rs.log.Debug("shortest path query failed", zap.String("origin", origin.String()),
			zap.String("destination", destination.String()), zap.Error(err))
		return nil, "", err
	}

	pathPolyline := geo.PolylineFromCoords(route.Coordinates)
	if rs.cache != nil {
		rs.cache.Add(key, cachedRoute{route: route, polyline: pathPolyline})
	}
	return route, pathPolyline, nil
}

func (rs *RoutingService) NamedPoints() []datastructure.NamedPoint {
	return rs.engine.GetGraph().GetNamedPoints()
}

func (rs *RoutingService) NetworkSummary() engine.NetworkSummary {
	return rs.summary
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, pkg.ErrNoPathFound):
		return "no_path"
	case errors.Is(err, pkg.ErrUnknownNode):
		return "unknown_node"
	case util.ErrorCode(err) == util.ErrBadParamInput:
		return "invalid"
	default:
		return "error"
	}
}
