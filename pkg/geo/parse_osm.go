package geo

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

type OSMWay struct {
	ID      int64
	NodeIDs []osm.NodeID
}

func NewOSMWay(id int64, nodeIDs []osm.NodeID) OSMWay {
	return OSMWay{
		ID:      id,
		NodeIDs: nodeIDs,
	}
}

// ParseOSM extracts one point per osm object that has tagKey (e.g. "building").
// tagged nodes are taken as they are, tagged ways are reduced to the mean of their node coordinates.
// nodes come first in file order, then ways in file order.
func ParseOSM(ctx context.Context, mapfile string, tagKey string) ([]datastructure.GeoPoint, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Parsing osm objects..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// first pass: tagged ways & the nodes they need.
	ways := []OSMWay{}
	wayNodesMap := make(map[osm.NodeID]bool)

	scannerWay := osmpbf.New(ctx, f, runtime.GOMAXPROCS(0))
	scannerWay.SkipNodes = true
	scannerWay.SkipRelations = true
	for scannerWay.Scan() {
		way, ok := scannerWay.Object().(*osm.Way)
		if !ok || way.Tags.Find(tagKey) == "" || len(way.Nodes) == 0 {
			continue
		}

		nodeIDs := way.Nodes.NodeIDs()
		for _, id := range nodeIDs {
			wayNodesMap[id] = true
		}
		ways = append(ways, NewOSMWay(int64(way.ID), nodeIDs))
	}
	if err := scannerWay.Err(); err != nil {
		scannerWay.Close()
		return nil, fmt.Errorf("error when scanning osm ways: %w", err)
	}
	scannerWay.Close()
	bar.Add(1)

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}

	// second pass: tagged nodes & coordinates of way nodes.
	points := []datastructure.GeoPoint{}
	nodeCoords := make(map[osm.NodeID][2]float64, len(wayNodesMap))

	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(0))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		if wayNodesMap[node.ID] {
			nodeCoords[node.ID] = [2]float64{node.Lon, node.Lat}
		}
		if node.Tags.Find(tagKey) != "" {
			points = append(points, datastructure.NewGeoPoint(node.Lon, node.Lat, int(node.ID)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error when scanning osm nodes: %w", err)
	}
	bar.Add(1)

	for _, way := range ways {
		point, ok := wayCentroid(way, nodeCoords)
		if !ok {
			continue
		}
		points = append(points, point)
	}
	bar.Add(1)
	fmt.Println("")

	return points, nil
}

// wayCentroid. mean of the way node coordinates, closed ways count the repeated first node once.
// returns false if none of the way nodes are in the extract.
func wayCentroid(way OSMWay, nodeCoords map[osm.NodeID][2]float64) (datastructure.GeoPoint, bool) {
	nodeIDs := way.NodeIDs
	if len(nodeIDs) > 1 && nodeIDs[0] == nodeIDs[len(nodeIDs)-1] {
		nodeIDs = nodeIDs[:len(nodeIDs)-1]
	}

	sumLon, sumLat := 0.0, 0.0
	count := 0
	for _, id := range nodeIDs {
		coord, ok := nodeCoords[id]
		if !ok {
			continue
		}
		sumLon += coord[0]
		sumLat += coord[1]
		count++
	}
	if count == 0 {
		return datastructure.GeoPoint{}, false
	}

	return datastructure.NewGeoPoint(sumLon/float64(count), sumLat/float64(count), int(way.ID)), true
}
