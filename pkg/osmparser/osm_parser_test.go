package osmparser

import (
	"context"
	"strings"
	"testing"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const campsiteOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="41.836729" lon="3.087111"/>
  <node id="2" lat="41.836600" lon="3.087050"/>
  <node id="3" lat="41.836346" lon="3.087046">
    <tag k="name" v="Intersection 1"/>
    <tag k="campsite:category" v="intersection"/>
  </node>
  <node id="4" lat="41.835480" lon="3.087084"/>
  <node id="5" lat="41.8366780" lon="3.0871180">
    <tag k="name" v="Reception"/>
    <tag k="tourism" v="camp_site"/>
  </node>
  <node id="6" lat="41.835968" lon="3.087096">
    <tag k="name" v="Bungalow 75"/>
    <tag k="campsite:category" v="bungalow"/>
  </node>
  <node id="7" lat="41.8350" lon="3.0870">
    <tag k="name" v="Reception"/>
  </node>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="service"/>
    <tag k="name" v="Road 1"/>
  </way>
  <way id="11">
    <nd ref="4"/>
    <nd ref="3"/>
    <tag k="highway" v="service"/>
    <tag k="oneway" v="-1"/>
  </way>
  <way id="12">
    <nd ref="5"/>
    <nd ref="6"/>
    <tag k="building" v="yes"/>
  </way>
  <way id="13">
    <nd ref="2"/>
    <nd ref="99"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="14">
    <nd ref="1"/>
    <nd ref="4"/>
    <tag k="highway" v="construction"/>
  </way>
</osm>`

func TestParseReader(t *testing.T) {
	p := NewOSMParser(zap.NewNop())
	campsite, err := p.ParseReader(context.Background(), strings.NewReader(campsiteOSM), FORMAT_XML)
	require.NoError(t, err)

	require.Len(t, campsite.Points, 3)
	assert.Equal(t, "Intersection 1", campsite.Points[0].GetName())
	assert.Equal(t, pkg.INTERSECTION, campsite.Points[0].GetCategory())
	assert.Equal(t, "Reception", campsite.Points[1].GetName())
	assert.Equal(t, pkg.SPECIAL, campsite.Points[1].GetCategory())
	assert.InDelta(t, 41.8366780, campsite.Points[1].GetCoordinate().Lat, 1e-12)
	assert.Equal(t, pkg.BUNGALOW, campsite.Points[2].GetCategory())

	require.Len(t, campsite.Roads, 2)

	road1 := campsite.Roads[0]
	assert.Equal(t, "Road 1", road1.GetName())
	assert.Equal(t, pkg.TWO_WAY, road1.GetDirection())
	assert.Len(t, road1.GetPoints(), 3)

	// oneway=-1 runs against the node order
	road2 := campsite.Roads[1]
	assert.Equal(t, "way/11", road2.GetName())
	assert.Equal(t, pkg.ONE_WAY, road2.GetDirection())
	require.Len(t, road2.GetPoints(), 2)
	assert.InDelta(t, 41.836346, road2.GetPoints()[0].Lat, 1e-12)
	assert.InDelta(t, 41.835480, road2.GetPoints()[1].Lat, 1e-12)
}

func TestGetFormat(t *testing.T) {
	testCases := []struct {
		file   string
		want   Format
		wantOk bool
	}{
		{file: "./data/treumal.osm", want: FORMAT_XML, wantOk: true},
		{file: "./data/treumal.osm.pbf", want: FORMAT_PBF, wantOk: true},
		{file: "./data/campsite.yaml", wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.file, func(t *testing.T) {
			got, ok := GetFormat(tt.file)
			assert.Equal(t, tt.wantOk, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
