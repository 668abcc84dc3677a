package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() ([]datastructure.NamedPoint, []RouteLine) {
	points := []datastructure.NamedPoint{
		datastructure.NewNamedPoint("Reception", 41.9051, 3.0601, pkg.SPECIAL),
		datastructure.NewNamedPoint("Bungalow 75", 41.9061, 3.0615, pkg.BUNGALOW),
	}
	routes := []RouteLine{
		NewRouteLine("Reception", "Bungalow 75", []geo.Coordinate{
			geo.NewCoordinate(41.9051, 3.0601),
			geo.NewCoordinate(41.9056, 3.0608),
			geo.NewCoordinate(41.9061, 3.0615),
		}, 162.4),
	}
	return points, routes
}

func TestWriteKML(t *testing.T) {
	points, routes := sample()

	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, "campsite routes", points, routes))

	out := buf.String()
	assert.Contains(t, out, "<name>campsite routes</name>")
	assert.Contains(t, out, "<name>Reception</name>")
	assert.Contains(t, out, "<name>Reception -&gt; Bungalow 75</name>")
	assert.Contains(t, out, "<LineString>")
	assert.Contains(t, out, "3.0608,41.9056")
	assert.Equal(t, 3, strings.Count(out, "<Placemark>"))
}

func TestFeatureCollection(t *testing.T) {
	points, routes := sample()

	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, points, routes))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	p, ok := fc.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.InDelta(t, 3.0601, p.Lon(), 1e-9)
	assert.InDelta(t, 41.9051, p.Lat(), 1e-9)
	assert.Equal(t, "Reception", fc.Features[0].Properties.MustString("name"))

	line, ok := fc.Features[2].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 3)
	assert.Equal(t, "Bungalow 75", fc.Features[2].Properties.MustString("destination"))
	assert.InDelta(t, 162.4, fc.Features[2].Properties.MustFloat64("distance"), 1e-9)
}
