package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lintang-b-s/geo-aggregator/pkg/cluster"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	"github.com/lintang-b-s/geo-aggregator/pkg/geo"
	logConfig "github.com/lintang-b-s/geo-aggregator/pkg/logger/config"
	myZap "github.com/lintang-b-s/geo-aggregator/pkg/logger/zap"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var (
	mapFile      = flag.String("f", "surakarta.osm.pbf", "input file, an openstreetmap .osm.pbf or a .json file shaped like the /api/aggregate body")
	tagKey       = flag.String("tag", "building", "osm tag key, every node/way with this tag becomes one point")
	radius       = flag.Float64("r", 0, "radius in meters, 0 takes the radius from the json input")
	outputFile   = flag.String("o", "aggregated.json", "output json file")
	strategyFlag = flag.String("strategy", "star", "grouping strategy: star, components or parallel")
	indexFlag    = flag.String("index", "grid", "spatial index: grid or rtree")
	workers      = flag.Int("workers", runtime.GOMAXPROCS(0), "workers for the parallel strategy")
	logLevel     = flag.Int("log-level", logConfig.INFO_LEVEL, "zap log level, -1 debug ... 2 error")
)

type outputFileBody struct {
	Radius           float64                                  `json:"radius"`
	Strategy         string                                   `json:"strategy"`
	SpatialIndex     string                                   `json:"spatial_index"`
	InputCount       int                                      `json:"input_count"`
	OutputCount      int                                      `json:"output_count"`
	AggregatedPoints map[string]datastructure.AggregatedPoint `json:"aggregated_points"`
}

func main() {
	flag.Parse()

	logger, err := myZap.New(logConfig.Configuration{Level: *logLevel, TimeFormat: time.RFC3339Nano})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	points, r, err := readInput(ctx, *mapFile, *tagKey, *radius)
	if err != nil {
		logger.Fatal("failed to read input", zap.String("file", *mapFile), zap.Error(err))
	}
	if err := cluster.ValidateInput(points, r); err != nil {
		logger.Fatal("invalid input", zap.Error(err))
	}

	strategy, err := cluster.ParseStrategy(*strategyFlag)
	if err != nil {
		logger.Fatal("invalid strategy", zap.Error(err))
	}
	index, err := cluster.ParseIndexType(*indexFlag)
	if err != nil {
		logger.Fatal("invalid index", zap.Error(err))
	}

	bar := progressbar.NewOptions(len(points),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2]Aggregating points..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	opts := cluster.DefaultOptions()
	opts.Strategy = strategy
	opts.Index = index
	opts.Workers = *workers
	opts.Progress = bar

	engine := cluster.NewEngine(logger, opts)
	result, err := engine.Aggregate(points, r)
	if err != nil {
		logger.Fatal("aggregation failed", zap.Error(err))
	}
	_ = bar.Finish()
	fmt.Println("")

	out := outputFileBody{
		Radius:           r,
		Strategy:         strategy.String(),
		SpatialIndex:     index.String(),
		InputCount:       result.InputCount,
		OutputCount:      len(result.Clusters),
		AggregatedPoints: make(map[string]datastructure.AggregatedPoint, len(result.Clusters)),
	}
	for _, c := range result.Clusters {
		out.AggregatedPoints[strconv.Itoa(c.GroupID)] = datastructure.AggregatedPoint{
			GroupID: c.GroupID,
			Lon:     c.Lon,
			Lat:     c.Lat,
		}
	}

	if err := writeOutput(*outputFile, out); err != nil {
		logger.Fatal("failed to write output", zap.String("file", *outputFile), zap.Error(err))
	}
	logger.Info("aggregated points written", zap.String("file", *outputFile),
		zap.Int("input_count", out.InputCount), zap.Int("output_count", out.OutputCount))
}

func readInput(ctx context.Context, path, tag string, radiusFlag float64) ([]datastructure.GeoPoint, float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		points, fileRadius, err := geo.ReadPointsJSON(path)
		if err != nil {
			return nil, 0, err
		}
		if radiusFlag == 0 && fileRadius != nil {
			return points, *fileRadius, nil
		}
		return points, radiusFlag, nil
	}

	points, err := geo.ParseOSM(ctx, path, tag)
	if err != nil {
		return nil, 0, err
	}
	return points, radiusFlag, nil
}

func writeOutput(path string, out outputFileBody) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	return enc.Encode(out)
}
