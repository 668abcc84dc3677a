package controllers

import (
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
)

type endpointRequest struct {
	Name string  `json:"name" validate:"omitempty,max=256"`
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
}

type shortestPathRequest struct {
	Origin      endpointRequest `json:"origin"`
	Destination endpointRequest `json:"destination"`
}

type coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type shortestPathResponse struct {
	Path              string       `json:"path"`
	Coordinates       []coordinate `json:"coordinates"`
	Nodes             []string     `json:"nodes"`
	Dist              float64      `json:"distance"`
	PathDist          float64      `json:"path_distance"`
	OriginAccess      float64      `json:"origin_access"`
	DestinationAccess float64      `json:"destination_access"`
}

func NewShortestPathResponse(route *routing.Route, path string) shortestPathResponse {
	coords := make([]coordinate, len(route.Coordinates))
	for i, c := range route.Coordinates {
		coords[i] = coordinate{Lat: c.Lat, Lon: c.Lon}
	}
	nodes := route.NodeNames
	if nodes == nil {
		nodes = []string{}
	}
	return shortestPathResponse{
		Path:              path,
		Coordinates:       coords,
		Nodes:             nodes,
		Dist:              route.TotalDistance,
		PathDist:          route.PathDistance,
		OriginAccess:      route.OriginAccess,
		DestinationAccess: route.DestinationAccess,
	}
}

type namedPointResponse struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Category string  `json:"category"`
}

func NewNamedPointsResponse(points []datastructure.NamedPoint) []namedPointResponse {
	resp := make([]namedPointResponse, len(points))
	for i, p := range points {
		c := p.GetCoordinate()
		resp[i] = namedPointResponse{
			Name:     p.GetName(),
			Lat:      c.Lat,
			Lon:      c.Lon,
			Category: p.GetCategory().String(),
		}
	}
	return resp
}

type networkSummaryResponse struct {
	Nodes            int `json:"nodes"`
	Edges            int `json:"edges"`
	Segments         int `json:"segments"`
	RejectedSegments int `json:"rejected_segments"`
	NamedPoints      int `json:"named_points"`
	Components       int `json:"strongly_connected_components"`
	LargestComponent int `json:"largest_component"`
}

func NewNetworkSummaryResponse(s engine.NetworkSummary) networkSummaryResponse {
	return networkSummaryResponse{
		Nodes:            s.NumberOfVertices,
		Edges:            s.NumberOfEdges,
		Segments:         s.NumberOfSegments,
		RejectedSegments: s.RejectedSegments,
		NamedPoints:      s.NumberOfNamedPoints,
		Components:       s.NumberOfComponents,
		LargestComponent: s.LargestComponent,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
