package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

type Format uint8

const (
	FORMAT_XML Format = iota
	FORMAT_PBF
)

// GetFormat. .osm -> xml, .pbf -> protobuf
func GetFormat(mapFile string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(mapFile))
	switch ext {
	case ".osm", ".xml":
		return FORMAT_XML, true
	case ".pbf":
		return FORMAT_PBF, true
	default:
		return FORMAT_XML, false
	}
}

type NodeCoord struct {
	lat float64
	lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{lat, lon}
}

type osmWay struct {
	id        int64
	name      string
	nodes     []int64
	direction pkg.RoadDirection
}

type namedNode struct {
	id       int64
	name     string
	category pkg.PointCategory
}

// Campsite. named points and roads read from an openstreetmap extract of a campsite.
type Campsite struct {
	Points []datastructure.NamedPoint
	Roads  []datastructure.Road
}

type OsmParser struct {
	nodeCoords map[int64]NodeCoord
	namedNodes []namedNode
	ways       []osmWay
	logger     *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		nodeCoords: make(map[int64]NodeCoord),
		namedNodes: make([]namedNode, 0),
		ways:       make([]osmWay, 0),
		logger:     logger,
	}
}

type scanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

func (p *OsmParser) Parse(mapFile string) (*Campsite, error) {
	format, ok := GetFormat(mapFile)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unsupported openstreetmap file %s", mapFile)
	}

	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.ParseReader(context.Background(), f, format)
}

// ParseReader. ways with a highway (or junction) tag become roads, nodes with a name tag become named points.
// campsite extracts are small, nodes and ways are collected in one scan.
func (p *OsmParser) ParseReader(ctx context.Context, r io.Reader, format Format) (*Campsite, error) {
	var sc scanner
	switch format {
	case FORMAT_PBF:
		sc = osmpbf.New(ctx, r, 1)
	default:
		sc = osmxml.New(ctx, r)
	}
	defer sc.Close()

	countWays := 0
	for sc.Scan() {
		switch o := sc.Object().(type) {
		case *osm.Node:
			p.nodeCoords[int64(o.ID)] = NewNodeCoord(o.Lat, o.Lon)
			if name := o.Tags.Find("name"); name != "" {
				p.namedNodes = append(p.namedNodes, namedNode{
					id:       int64(o.ID),
					name:     name,
					category: nodeCategory(o.Tags),
				})
			}
		case *osm.Way:
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			countWays++
			p.ways = append(p.ways, newOsmWay(o))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't read openstreetmap data")
	}

	p.logger.Info("openstreetmap data scanned",
		zap.Int("nodes", len(p.nodeCoords)), zap.Int("ways", countWays), zap.Int("named_nodes", len(p.namedNodes)))

	return p.buildCampsite(), nil
}

func (p *OsmParser) buildCampsite() *Campsite {
	campsite := &Campsite{
		Points: make([]datastructure.NamedPoint, 0, len(p.namedNodes)),
		Roads:  make([]datastructure.Road, 0, len(p.ways)),
	}

	seen := make(map[string]struct{})
	for _, n := range p.namedNodes {
		if _, ok := seen[n.name]; ok {
			// osm allows repeated names, the first node keeps it
			p.logger.Warn("duplicate named node skipped", zap.String("name", n.name), zap.Int64("osm_id", n.id))
			continue
		}
		seen[n.name] = struct{}{}
		coord := p.nodeCoords[n.id]
		campsite.Points = append(campsite.Points, datastructure.NewNamedPoint(n.name, coord.lat, coord.lon, n.category))
	}

	for _, w := range p.ways {
		points := make([]geo.Coordinate, 0, len(w.nodes))
		for _, nodeId := range w.nodes {
			coord, ok := p.nodeCoords[nodeId]
			if !ok {
				p.logger.Warn("way references a missing node", zap.Int64("way_id", w.id), zap.Int64("node_id", nodeId))
				continue
			}
			points = append(points, geo.NewCoordinate(coord.lat, coord.lon))
		}
		if len(points) < 2 {
			continue
		}
		campsite.Roads = append(campsite.Roads, datastructure.NewRoad(w.name, points, w.direction))
	}

	return campsite
}

func newOsmWay(way *osm.Way) osmWay {
	nodes := make([]int64, len(way.Nodes))
	for i, n := range way.Nodes {
		nodes[i] = int64(n.ID)
	}

	direction := pkg.TWO_WAY
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		direction = pkg.ONE_WAY
	case "-1", "reverse":
		direction = pkg.ONE_WAY
		nodes = util.ReverseG(nodes)
	default:
		if way.Tags.Find("junction") == "roundabout" {
			direction = pkg.ONE_WAY
		}
	}

	name := way.Tags.Find("name")
	if name == "" {
		name = fmt.Sprintf("way/%d", way.ID)
	}

	return osmWay{
		id:        int64(way.ID),
		name:      name,
		nodes:     nodes,
		direction: direction,
	}
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		_, rejected := rejectedHighway[highway]
		return !rejected
	}
	return junction != ""
}

func nodeCategory(tags osm.Tags) pkg.PointCategory {
	if category := tags.Find("campsite:category"); category != "" {
		return pkg.GetPointCategory(category)
	}
	if tags.Find("tourism") != "" || tags.Find("amenity") != "" {
		return pkg.SPECIAL
	}
	return pkg.OTHER
}

var rejectedHighway = map[string]struct{}{
	"proposed":     {},
	"construction": {},
	"abandoned":    {},
	"razed":        {},
	"platform":     {},
}
