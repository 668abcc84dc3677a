package routing

import (
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectionAt(t float64) geo.Projection {
	return geo.Projection{Closest: geo.Interpolate(pointP, pointQ, t), T: t}
}

// pathCost. sum of the edge weights along the vertex sequence
func pathCost(t *testing.T, q *QueryGraph, vertices ...da.Index) float64 {
	t.Helper()
	cost := 0.0
	for i := 0; i+1 < len(vertices); i++ {
		found := false
		q.ForOutEdgesOf(vertices[i], func(e *da.OutEdge) {
			if !found && e.GetHead() == vertices[i+1] {
				cost += e.GetWeight()
				found = true
			}
		})
		require.True(t, found, "no edge %d -> %d", vertices[i], vertices[i+1])
	}
	return cost
}

func TestSplitSegmentPreservesSegmentCost(t *testing.T) {
	for _, direction := range []pkg.RoadDirection{pkg.ONE_WAY, pkg.TWO_WAY} {
		t.Run(direction.String(), func(t *testing.T) {
			g, err := da.BuildGraph(nil, []da.RoadSegment{da.NewRoadSegment(0, "pq", pointP, pointQ, direction)})
			require.NoError(t, err)
			start, end := g.GetSegmentEndpoints(0)
			length := g.GetSegment(0).GetLength()

			q := NewQueryGraph(g)
			w1 := q.SplitSegment(0, projectionAt(0.7))
			w2 := q.SplitSegment(0, projectionAt(0.25))

			assert.Equal(t, 2, q.NumberOfVirtualVertices())
			assert.True(t, q.IsVirtual(w1))
			assert.True(t, q.IsVirtual(w2))

			// start -> w2 -> w1 -> end
			assert.True(t, q.HasEdge(start, w2))
			assert.True(t, q.HasEdge(w2, w1))
			assert.True(t, q.HasEdge(w1, end))
			assert.False(t, q.HasEdge(start, end))
			assert.InDelta(t, length, pathCost(t, q, start, w2, w1, end), 1e-9)

			if direction == pkg.TWO_WAY {
				assert.True(t, q.HasEdge(end, w1))
				assert.True(t, q.HasEdge(w1, w2))
				assert.True(t, q.HasEdge(w2, start))
				assert.InDelta(t, length, pathCost(t, q, end, w1, w2, start), 1e-9)
			} else {
				assert.False(t, q.HasEdge(w1, w2))
				assert.Equal(t, 1, q.GetOutDegree(w2))
				assert.Equal(t, 0, q.GetOutDegree(end))
			}

			// base graph untouched
			assert.True(t, g.HasEdge(start, end))
			assert.Equal(t, 2, g.NumberOfVertices())
		})
	}
}

func TestSplitSegmentReusesExistingVertices(t *testing.T) {
	g, err := da.BuildGraph(nil, []da.RoadSegment{da.NewRoadSegment(0, "pq", pointP, pointQ, pkg.TWO_WAY)})
	require.NoError(t, err)
	start, end := g.GetSegmentEndpoints(0)

	q := NewQueryGraph(g)
	assert.Equal(t, start, q.SplitSegment(0, projectionAt(0)))
	assert.Equal(t, end, q.SplitSegment(0, projectionAt(1)))
	assert.Equal(t, 0, q.NumberOfVirtualVertices())

	w := q.SplitSegment(0, projectionAt(0.5))
	assert.Equal(t, w, q.SplitSegment(0, projectionAt(0.5)))
	assert.Equal(t, 1, q.NumberOfVirtualVertices())

	found, ok := q.FindVertex(geo.Interpolate(pointP, pointQ, 0.5))
	require.True(t, ok)
	assert.Equal(t, w, found)
	assert.False(t, q.IsIsolated(w))
	assert.Empty(t, q.GetVertexName(w))
}

func TestSplitSegmentSharedEndpoint(t *testing.T) {
	r := geo.NewCoordinate(41.8368, 3.0870)
	g, err := da.BuildGraph(nil, da.DecomposeRoads([]da.Road{
		da.NewRoad("pqr", []geo.Coordinate{pointP, pointQ, r}, pkg.TWO_WAY),
	}))
	require.NoError(t, err)
	_, qVertex := g.GetSegmentEndpoints(0)

	q := NewQueryGraph(g)
	w0 := q.SplitSegment(0, projectionAt(0.5))
	w1 := q.SplitSegment(1, geo.Projection{Closest: geo.Interpolate(pointQ, r, 0.5), T: 0.5})

	// Q keeps one edge per segment, each redirected to the split point of that segment
	assert.Equal(t, 2, q.GetOutDegree(qVertex))
	assert.True(t, q.HasEdge(qVertex, w0))
	assert.True(t, q.HasEdge(qVertex, w1))
}
