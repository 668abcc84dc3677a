package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/campnav/pkg/osmparser"
	"github.com/lintang-b-s/campnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const snapshotHeader = "campnav-network 1"

// Load. read a network definition, the format follows the file extension:
// .yaml/.yml (definition), .csv (campsite data), .snapshot (compressed snapshot), .osm/.pbf (openstreetmap extract).
func Load(path string, logger *zap.Logger) (*Network, error) {
	var (
		n   *Network
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		n, err = LoadYAML(path)
	case ".csv":
		n, err = LoadCSV(path)
	case ".snapshot":
		n, err = ReadSnapshot(path)
	case ".osm", ".pbf", ".xml":
		var campsite *osmparser.Campsite
		campsite, err = osmparser.NewOSMParser(logger).Parse(path)
		if err == nil {
			n = FromCampsite(campsite.Points, campsite.Roads)
		}
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unsupported network file %s", path)
	}
	if err != nil {
		return nil, err
	}

	if err := n.Validate(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "network %s", path)
	}
	return n, nil
}

func LoadYAML(path string) (*Network, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't read network definition %s", path)
	}

	var n Network
	if err := v.Unmarshal(&n); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't decode network definition %s", path)
	}
	return &n, nil
}

func WriteYAML(path string, n *Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// WriteSnapshot. bzip2 compressed text snapshot:
//
//	campnav-network 1
//	<number of points> <number of roads>
//	<quoted name> <lat> <lon> <category>            (one line per point)
//	<quoted name> <direction> <n> <lat> <lon> ...     (one line per road)
func WriteSnapshot(path string, n *Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	if err := writeSnapshot(bz, n); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func writeSnapshot(out io.Writer, n *Network) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%s\n", snapshotHeader)
	fmt.Fprintf(w, "%d %d\n", len(n.Points), len(n.Roads))

	for _, p := range n.Points {
		category := p.Category
		if category == "" {
			category = "other"
		}
		fmt.Fprintf(w, "%s %s %s %s\n", strconv.Quote(p.Name), formatFloat(p.Lat), formatFloat(p.Lon), category)
	}

	for _, r := range n.Roads {
		direction := r.Direction
		if direction == "" {
			direction = "two-way"
		}
		fmt.Fprintf(w, "%s %s %d", strconv.Quote(r.Name), direction, len(r.Points))
		for _, latLon := range r.Points {
			fmt.Fprintf(w, " %s %s", formatFloat(latLon[0]), formatFloat(latLon[1]))
		}
		fmt.Fprintf(w, "\n")
	}

	return w.Flush()
}

func ReadSnapshot(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	n, err := readSnapshot(bz)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can't read network snapshot %s", path)
	}
	return n, nil
}

func readSnapshot(in io.Reader) (*Network, error) {
	br := bufio.NewReader(in)

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if line != snapshotHeader {
		return nil, fmt.Errorf("unknown snapshot header %q", line)
	}

	line, err = readLine(br)
	if err != nil {
		return nil, err
	}
	var numPoints, numRoads int
	if _, err := fmt.Sscanf(line, "%d %d", &numPoints, &numRoads); err != nil {
		return nil, fmt.Errorf("invalid snapshot counts %q: %w", line, err)
	}

	n := &Network{
		Points: make([]PointSpec, 0, numPoints),
		Roads:  make([]RoadSpec, 0, numRoads),
	}

	for i := 0; i < numPoints; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		name, ff, err := splitQuotedName(line)
		if err != nil {
			return nil, err
		}
		if len(ff) != 3 {
			return nil, fmt.Errorf("invalid point line %q", line)
		}
		lat, err := strconv.ParseFloat(ff[0], 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(ff[1], 64)
		if err != nil {
			return nil, err
		}
		n.Points = append(n.Points, PointSpec{Name: name, Lat: lat, Lon: lon, Category: ff[2]})
	}

	for i := 0; i < numRoads; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		name, ff, err := splitQuotedName(line)
		if err != nil {
			return nil, err
		}
		if len(ff) < 2 {
			return nil, fmt.Errorf("invalid road line %q", line)
		}
		numCoords, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, err
		}
		if len(ff) != 2+2*numCoords {
			return nil, fmt.Errorf("road %q: expected %d coordinates", name, numCoords)
		}

		latLons := make([][2]float64, numCoords)
		for j := 0; j < numCoords; j++ {
			lat, err := strconv.ParseFloat(ff[2+2*j], 64)
			if err != nil {
				return nil, err
			}
			lon, err := strconv.ParseFloat(ff[3+2*j], 64)
			if err != nil {
				return nil, err
			}
			latLons[j] = [2]float64{lat, lon}
		}
		n.Roads = append(n.Roads, RoadSpec{Name: name, Direction: ff[0], Points: latLons})
	}

	return n, nil
}

func splitQuotedName(line string) (string, []string, error) {
	quoted, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", nil, fmt.Errorf("invalid quoted name in %q: %w", line, err)
	}
	name, err := strconv.Unquote(quoted)
	if err != nil {
		return "", nil, err
	}
	return name, strings.Fields(line[len(quoted):]), nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
