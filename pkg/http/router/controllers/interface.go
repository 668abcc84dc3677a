package controllers

import (
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
)

type RoutingService interface {
	ShortestPath(origin, destination routing.Endpoint) (*routing.Route, string, error)
	NamedPoints() []datastructure.NamedPoint
	NetworkSummary() engine.NetworkSummary
}
