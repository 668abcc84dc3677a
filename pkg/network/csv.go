package network

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/campnav/pkg"
	"github.com/lintang-b-s/campnav/pkg/util"
)

const roadSource = "road"

var csvHeader = []string{"name", "latitude", "longitude", "road_direction", "source"}

// LoadCSV. campsite data csv (name,latitude,longitude,road_direction,source).
// every row is a named point with source as its category, except rows with source "road":
// those are the waypoints of the road with that name, in travel order.
func LoadCSV(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't open campsite data %s", path)
	}
	defer f.Close()

	n, err := readCSV(f)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't read campsite data %s", path)
	}
	return n, nil
}

func readCSV(in io.Reader) (*Network, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range []string{"name", "latitude", "longitude"} {
		if _, ok := cols[h]; !ok {
			return nil, errors.New("missing column " + h)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	n := &Network{}
	roadIdx := make(map[string]int)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)

		name := field(record, "name")
		lat, err := strconv.ParseFloat(field(record, "latitude"), 64)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: invalid latitude", line)
		}
		lon, err := strconv.ParseFloat(field(record, "longitude"), 64)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: invalid longitude", line)
		}
		direction, ok := pkg.GetRoadDirection(field(record, "road_direction"))
		if !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: invalid road_direction %q", line, field(record, "road_direction"))
		}

		source := strings.ToLower(field(record, "source"))
		if source != roadSource {
			n.Points = append(n.Points, PointSpec{Name: name, Lat: lat, Lon: lon, Category: source})
			continue
		}

		i, ok := roadIdx[name]
		if !ok {
			i = len(n.Roads)
			roadIdx[name] = i
			n.Roads = append(n.Roads, RoadSpec{Name: name, Direction: direction.String()})
		}
		n.Roads[i].Points = append(n.Roads[i].Points, [2]float64{lat, lon})
	}

	return n, nil
}

// WriteCSV. points first, then one row per road waypoint.
func WriteCSV(path string, n *Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeCSV(f, n); err != nil {
		return err
	}
	return f.Close()
}

func writeCSV(out io.Writer, n *Network) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range n.Points {
		if err := w.Write([]string{p.Name, formatFloat(p.Lat), formatFloat(p.Lon), "", p.Category}); err != nil {
			return err
		}
	}

	for _, r := range n.Roads {
		direction, _ := pkg.GetRoadDirection(r.Direction)
		for _, latLon := range r.Points {
			if err := w.Write([]string{r.Name, formatFloat(latLon[0]), formatFloat(latLon[1]), direction.String(), roadSource}); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
