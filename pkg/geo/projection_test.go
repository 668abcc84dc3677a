package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectPointToSegment(t *testing.T) {
	start := NewCoordinate(41.8358, 3.0860)
	end := NewCoordinate(41.8358, 3.0870)

	testCases := []struct {
		name        string
		point       Coordinate
		wantT       float64
		wantClosest Coordinate
		wantDist    float64
	}{
		{
			name:        "perpendicular to the midpoint",
			point:       NewCoordinate(41.8359, 3.0865),
			wantT:       0.5,
			wantClosest: NewCoordinate(41.8358, 3.0865),
			wantDist:    11.12,
		},
		{
			name:        "before start is clamped to start",
			point:       NewCoordinate(41.8358, 3.0850),
			wantT:       0,
			wantClosest: start,
			wantDist:    Distance(NewCoordinate(41.8358, 3.0850), start),
		},
		{
			name:        "beyond end is clamped to end",
			point:       NewCoordinate(41.8360, 3.0880),
			wantT:       1,
			wantClosest: end,
			wantDist:    Distance(NewCoordinate(41.8360, 3.0880), end),
		},
		{
			name:        "on the segment",
			point:       NewCoordinate(41.8358, 3.0862),
			wantT:       0.2,
			wantClosest: NewCoordinate(41.8358, 3.0862),
			wantDist:    0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			proj := ProjectPointToSegment(tt.point, start, end)
			assert.InDelta(t, tt.wantT, proj.T, 1e-9)
			assert.InDelta(t, tt.wantClosest.Lat, proj.Closest.Lat, 1e-9)
			assert.InDelta(t, tt.wantClosest.Lon, proj.Closest.Lon, 1e-9)
			assert.InDelta(t, tt.wantDist, proj.Distance, 0.01)
		})
	}
}

func TestProjectPointToSegmentNeverExtrapolates(t *testing.T) {
	rd := rand.New(rand.NewSource(42))
	randCoord := func() Coordinate {
		return NewCoordinate(41.835+rd.Float64()*0.002, 3.086+rd.Float64()*0.002)
	}

	for i := 0; i < 1000; i++ {
		start, end, point := randCoord(), randCoord(), randCoord()
		proj := ProjectPointToSegment(point, start, end)

		require.GreaterOrEqual(t, proj.T, 0.0)
		require.LessOrEqual(t, proj.T, 1.0)

		// the foot lies within the segment's bounding box
		require.GreaterOrEqual(t, proj.Closest.Lat, min(start.Lat, end.Lat)-1e-12)
		require.LessOrEqual(t, proj.Closest.Lat, max(start.Lat, end.Lat)+1e-12)
		require.GreaterOrEqual(t, proj.Closest.Lon, min(start.Lon, end.Lon)-1e-12)
		require.LessOrEqual(t, proj.Closest.Lon, max(start.Lon, end.Lon)+1e-12)

		// no endpoint is closer than the projection (slack for the flat approximation)
		require.LessOrEqual(t, proj.Distance, Distance(point, start)+0.05)
		require.LessOrEqual(t, proj.Distance, Distance(point, end)+0.05)
	}
}

func TestPolylineFromCoords(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	encoded := PolylineFromCoords(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 43.252, decoded[2].Lat, 1e-5)
}
