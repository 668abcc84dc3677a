package spatialindex

import (
	"math/rand"
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildGrid(t *testing.T) *datastructure.Graph {
	t.Helper()
	roads := make([]datastructure.Road, 0)
	for i := 0; i < 10; i++ {
		lat := 41.8350 + float64(i)*0.0005
		roads = append(roads, datastructure.NewRoad("row", []geo.Coordinate{
			geo.NewCoordinate(lat, 3.0850),
			geo.NewCoordinate(lat, 3.0900),
		}, pkg.TWO_WAY))
	}
	g, err := datastructure.BuildGraph(nil, datastructure.DecomposeRoads(roads))
	require.NoError(t, err)
	return g
}

func TestSearchWithinRadius(t *testing.T) {
	g := buildGrid(t)
	rt := NewRtree()
	rt.Build(g, 0.005, zap.NewNop())
	require.Equal(t, g.NumberOfSegments(), rt.Len())

	// between row 3 and row 4, 27.8 m from both
	got := rt.SearchWithinRadius(41.83675, 3.0875, 0.03)
	assert.Equal(t, []datastructure.Index{3, 4}, got)

	got = rt.SearchWithinRadius(41.83675, 3.0875, 0.01)
	assert.Empty(t, got)

	got = rt.SearchWithinRadius(42.0, 3.0875, 0.5)
	assert.Empty(t, got)
}

func TestSearchWithinRadiusContainsEveryNearSegment(t *testing.T) {
	g := buildGrid(t)
	rt := NewRtree()
	rt.Build(g, 0.001, zap.NewNop())

	rd := rand.New(rand.NewSource(42))
	radiusKm := 0.05
	for i := 0; i < 500; i++ {
		q := geo.NewCoordinate(41.8340+rd.Float64()*0.0060, 3.0840+rd.Float64()*0.0070)
		got := make(map[datastructure.Index]struct{})
		for _, id := range rt.SearchWithinRadius(q.Lat, q.Lon, radiusKm) {
			got[id] = struct{}{}
		}

		for id, s := range g.GetSegments() {
			proj := geo.ProjectPointToSegment(q, s.GetStart(), s.GetEnd())
			if proj.Distance <= radiusKm*1000*0.99 {
				_, ok := got[datastructure.Index(id)]
				assert.True(t, ok, "segment %d at %f m missing for %v", id, proj.Distance, q)
			}
		}
	}
}
