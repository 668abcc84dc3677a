package usecases

import (
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/engine"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	calls int
	err   error
}

func (s *stubEngine) GetGraph() *datastructure.Graph {
	return nil
}

func (s *stubEngine) ShortestPath(origin, destination routing.Endpoint) (*routing.Route, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &routing.Route{
		Coordinates: []geo.Coordinate{
			geo.NewCoordinate(41.8358, 3.0860),
			geo.NewCoordinate(41.8358, 3.0870),
		},
		PathDistance:  82.9,
		TotalDistance: 82.9,
	}, nil
}

func TestShortestPathCache(t *testing.T) {
	stub := &stubEngine{}
	rs, err := NewRoutingService(zap.NewNop(), stub, engine.NetworkSummary{}, 8)
	require.NoError(t, err)

	origin, destination := routing.NewNamedEndpoint("Gate"), routing.NewNamedEndpoint("Pool")
	first, firstPolyline, err := rs.ShortestPath(origin, destination)
	require.NoError(t, err)
	second, secondPolyline, err := rs.ShortestPath(origin, destination)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.calls)
	assert.Same(t, first, second)
	assert.Equal(t, firstPolyline, secondPolyline)

	coords, err := geo.CoordsFromPolyline(firstPolyline)
	require.NoError(t, err)
	assert.Len(t, coords, 2)

	// reversed query is a different key
	_, _, err = rs.ShortestPath(destination, origin)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestShortestPathErrorsAreNotCached(t *testing.T) {
	stub := &stubEngine{err: util.WrapErrorf(pkg.ErrNoPathFound, util.ErrNotFound, "Exit -> Gate")}
	rs, err := NewRoutingService(zap.NewNop(), stub, engine.NetworkSummary{}, 8)
	require.NoError(t, err)

	origin, destination := routing.NewNamedEndpoint("Exit"), routing.NewNamedEndpoint("Gate")
	for i := 0; i < 2; i++ {
		_, _, err = rs.ShortestPath(origin, destination)
		assert.ErrorIs(t, err, pkg.ErrNoPathFound)
	}
	assert.Equal(t, 2, stub.calls)
}

func TestShortestPathWithoutCache(t *testing.T) {
	stub := &stubEngine{}
	rs, err := NewRoutingService(zap.NewNop(), stub, engine.NetworkSummary{NumberOfVertices: 3}, 0)
	require.NoError(t, err)

	origin := routing.NewCoordinateEndpoint(41.8360, 3.0865)
	for i := 0; i < 3; i++ {
		_, _, err = rs.ShortestPath(origin, routing.NewNamedEndpoint("Pool"))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, stub.calls)
	assert.Equal(t, 3, rs.NetworkSummary().NumberOfVertices)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "found"},
		{util.WrapErrorf(pkg.ErrNoPathFound, util.ErrNotFound, "x"), "no_path"},
		{util.WrapErrorf(pkg.ErrUnknownNode, util.ErrBadParamInput, "x"), "unknown_node"},
		{util.WrapErrorf(nil, util.ErrBadParamInput, "x"), "invalid"},
		{util.WrapErrorf(nil, util.ErrInternalServerError, "x"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outcome(tt.err))
	}
}
