package engine

import (
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/engine/routing"
	"github.com/lintang-b-s/campnav/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEngineFromSampleNetwork(t *testing.T) {
	e, err := NewEngine("../../data/campsite.yaml", 0.05, 0.005, zap.NewNop())
	require.NoError(t, err)

	summary := e.GetSummary()
	assert.Equal(t, 4, summary.NumberOfNamedPoints)
	assert.Equal(t, 4, summary.NumberOfSegments)
	assert.Zero(t, summary.RejectedSegments)
	assert.Equal(t, summary.NumberOfSegments, e.GetRtree().Len())

	// Road 2 is one-way towards Intersection 2
	route, err := e.GetRoutingEngine().ShortestPath(routing.NewNamedEndpoint("Reception"),
		routing.NewNamedEndpoint("Bungalow 75"))
	require.NoError(t, err)
	assert.Greater(t, route.TotalDistance, route.PathDistance)
	assert.Contains(t, route.NodeNames, "Intersection 1")

	_, err = e.GetRoutingEngine().ShortestPath(routing.NewNamedEndpoint("Intersection 2"),
		routing.NewNamedEndpoint("Reception"))
	assert.ErrorIs(t, err, pkg.ErrNoPathFound)
}

func TestNewEngineFromNetworkRejectedSegments(t *testing.T) {
	n := &network.Network{
		Roads: []network.RoadSpec{
			{Name: "zero", Points: [][2]float64{{41.8358, 3.0860}, {41.8358, 3.0860}}},
			{Name: "ok", Points: [][2]float64{{41.8358, 3.0860}, {41.8358, 3.0870}}, Direction: "one-way"},
		},
	}

	e, err := NewEngineFromNetwork(n, 0.05, 0.005, zap.NewNop())
	require.NoError(t, err)
	summary := e.GetSummary()
	assert.Equal(t, 1, summary.RejectedSegments)
	assert.Equal(t, 1, summary.NumberOfSegments)
	assert.Equal(t, 2, summary.NumberOfComponents)
	assert.Equal(t, 1, summary.LargestComponent)

	n.Roads = n.Roads[:1]
	_, err = NewEngineFromNetwork(n, 0.05, 0.005, zap.NewNop())
	assert.ErrorIs(t, err, pkg.ErrInvalidSegment)
}
