package routing

import (
	"math/rand"
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSnapExistingVertex(t *testing.T) {
	g, err := da.BuildGraph(nil, []da.RoadSegment{da.NewRoadSegment(0, "pq", pointP, pointQ, pkg.TWO_WAY)})
	require.NoError(t, err)
	s := NewSnapper(g, nil, 0.05)

	q := NewQueryGraph(g)
	res, err := s.Snap(q, pointQ)
	require.NoError(t, err)
	assert.False(t, res.Snapped)
	assert.Zero(t, res.Distance)
	assert.Equal(t, da.INVALID_SEGMENT_ID, res.SegmentId)
	assert.Equal(t, 0, q.NumberOfVirtualVertices())
}

func TestSnapTieGoesToLowestSegment(t *testing.T) {
	south := [2]geo.Coordinate{geo.NewCoordinate(41.8350, 3.0860), geo.NewCoordinate(41.8350, 3.0870)}
	north := [2]geo.Coordinate{geo.NewCoordinate(41.8360, 3.0860), geo.NewCoordinate(41.8360, 3.0870)}

	for _, tc := range []struct {
		name     string
		segments []da.RoadSegment
		want     string
	}{
		{
			name: "identical segments",
			segments: []da.RoadSegment{
				da.NewRoadSegment(0, "north", north[0], north[1], pkg.TWO_WAY),
				da.NewRoadSegment(1, "north copy", north[0], north[1], pkg.TWO_WAY),
			},
			want: "north",
		},
		{
			name: "nearest wins over input order",
			segments: []da.RoadSegment{
				da.NewRoadSegment(0, "south", south[0], south[1], pkg.TWO_WAY),
				da.NewRoadSegment(1, "north", north[0], north[1], pkg.TWO_WAY),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := da.BuildGraph(nil, tc.segments)
			require.NoError(t, err)
			rt := spatialindex.NewRtree()
			rt.Build(g, 0.005, zap.NewNop())

			point := geo.NewCoordinate(41.8360+0.0002, 3.0865)
			for _, s := range []*Snapper{NewSnapper(g, nil, 0.05), NewSnapper(g, rt, 0.05)} {
				res, err := s.Snap(NewQueryGraph(g), point)
				require.NoError(t, err)
				if tc.want != "" {
					assert.Equal(t, da.Index(0), res.SegmentId)
					assert.Equal(t, tc.want, g.GetSegment(res.SegmentId).GetRoadName())
				} else {
					assert.Equal(t, "north", g.GetSegment(res.SegmentId).GetRoadName())
				}
			}
		})
	}
}

func TestNearestSegmentIndexMatchesLinearScan(t *testing.T) {
	roads := make([]da.Road, 0)
	rd := rand.New(rand.NewSource(42))
	for i := 0; i < 60; i++ {
		a := geo.NewCoordinate(41.8340+rd.Float64()*0.004, 3.0840+rd.Float64()*0.004)
		b := geo.NewCoordinate(a.Lat+(rd.Float64()-0.5)*0.001, a.Lon+(rd.Float64()-0.5)*0.001)
		roads = append(roads, da.NewRoad("r", []geo.Coordinate{a, b}, pkg.TWO_WAY))
	}
	g, err := da.BuildGraph(nil, da.DecomposeRoads(roads))
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(g, 0.005, zap.NewNop())

	indexed := NewSnapper(g, rt, 0.05)
	linear := NewSnapper(g, nil, 0.05)

	for i := 0; i < 1000; i++ {
		// some queries land far outside the network to exercise the fallback
		point := geo.NewCoordinate(41.8320+rd.Float64()*0.008, 3.0820+rd.Float64()*0.008)
		gotId, gotProj := indexed.NearestSegment(point)
		wantId, wantProj := linear.NearestSegment(point)
		assert.Equal(t, wantId, gotId)
		assert.InDelta(t, wantProj.Distance, gotProj.Distance, 1e-9)
	}
}

func TestSnapToRoadEmptySegmentList(t *testing.T) {
	g, err := da.BuildGraph([]da.NamedPoint{da.NewNamedPoint("A", pointP.Lat, pointP.Lon, pkg.OTHER)}, nil)
	require.NoError(t, err)
	s := NewSnapper(g, nil, 0.05)

	_, err = s.SnapToRoad(NewQueryGraph(g), pointQ)
	assert.ErrorIs(t, err, pkg.ErrEmptySegmentList)

	_, err = s.Snap(NewQueryGraph(g), pointP)
	assert.ErrorIs(t, err, pkg.ErrEmptySegmentList)
}
