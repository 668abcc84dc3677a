package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	helper "github.com/lintang-b-s/campnav/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/campnav/pkg/util"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	validate       *util.Validator
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		validate:       util.NewValidator(),
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/points", api.namedPoints)
	group.GET("/network", api.networkSummary)
}

// shortestPath
//
//	@Summary		shortest route between two named points or coordinates
//	@Description	each endpoint is either a named point (origin, destination) or a coordinate (origin_lat & origin_lon, destination_lat & destination_lon). coordinates are snapped onto the nearest road segment.
//	@Tags			routing
//	@Produce		json
//	@Param			origin			query		string	false	"origin named point"
//	@Param			origin_lat		query		number	false	"origin latitude"
//	@Param			origin_lon		query		number	false	"origin longitude"
//	@Param			destination		query		string	false	"destination named point"
//	@Param			destination_lat	query		number	false	"destination latitude"
//	@Param			destination_lon	query		number	false	"destination longitude"
//	@Success		200				{object}	shortestPathResponse
//	@Failure		400				{object}	errorResponse
//	@Failure		404				{object}	errorResponse
//	@Failure		500				{object}	errorResponse
//	@Router			/computeRoutes [get]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.Origin, err = parseEndpoint(query, "origin")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Destination, err = parseEndpoint(query, "destination")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, pathPolyline, err := api.routingService.ShortestPath(request.Origin.toEndpoint(),
		request.Destination.toEndpoint())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route, pathPolyline)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// namedPoints
//
//	@Summary	named points of the campsite
//	@Tags		network
//	@Produce	json
//	@Success	200	{array}	namedPointResponse
//	@Router		/points [get]
func (api *routingAPI) namedPoints(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	points := NewNamedPointsResponse(api.routingService.NamedPoints())
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": points}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// networkSummary
//
//	@Summary	size and connectivity of the road network
//	@Tags		network
//	@Produce	json
//	@Success	200	{object}	networkSummaryResponse
//	@Router		/network [get]
func (api *routingAPI) networkSummary(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	summary := NewNetworkSummaryResponse(api.routingService.NetworkSummary())
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": summary}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// parseEndpoint. <prefix> names a point, <prefix>_lat & <prefix>_lon give a coordinate, exactly one form is allowed.
func parseEndpoint(query url.Values, prefix string) (endpointRequest, error) {
	var (
		req endpointRequest
		err error
	)
	name := query.Get(prefix)
	latStr, lonStr := query.Get(prefix+"_lat"), query.Get(prefix+"_lon")
	hasCoord := latStr != "" || lonStr != ""

	switch {
	case name != "" && hasCoord:
		return req, util.WrapErrorf(nil, util.ErrBadParamInput,
			"use either %s or %s_lat/%s_lon, not both", prefix, prefix, prefix)
	case name != "":
		req.Name = name
		return req, nil
	case !hasCoord:
		return req, util.WrapErrorf(nil, util.ErrBadParamInput,
			"%s or %s_lat/%s_lon is required", prefix, prefix, prefix)
	}

	req.Lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return req, util.WrapErrorf(nil, util.ErrBadParamInput, "%s_lat is required and must be a valid float", prefix)
	}
	req.Lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return req, util.WrapErrorf(nil, util.ErrBadParamInput, "%s_lon is required and must be a valid float", prefix)
	}
	return req, nil
}

func (e endpointRequest) toEndpoint() routing.Endpoint {
	if e.Name != "" {
		return routing.NewNamedEndpoint(e.Name)
	}
	return routing.NewCoordinateEndpoint(e.Lat, e.Lon)
}
