package usecases

import (
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	ShortestPath(origin, destination routing.Endpoint) (*routing.Route, error)
}
