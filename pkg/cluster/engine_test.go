package cluster

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/geo-aggregator/pkg"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	"github.com/lintang-b-s/geo-aggregator/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	baseLon = 110.81169121664644
	baseLat = -7.5680354571554025
)

// offset returns a point dx meters east & dy meters north of the base point.
func offset(dx, dy float64, id int) datastructure.GeoPoint {
	metersPerDegLat := geo.EARTH_RADIUS_M * math.Pi / 180.0
	metersPerDegLon := metersPerDegLat * math.Cos(baseLat*math.Pi/180.0)
	return datastructure.NewGeoPoint(baseLon+dx/metersPerDegLon, baseLat+dy/metersPerDegLat, id)
}

func randomGeoPoints(n int, seed uint64, extent float64) []datastructure.GeoPoint {
	rng := rand.New(rand.NewSource(seed))
	points := make([]datastructure.GeoPoint, n)
	for i := 0; i < n; i++ {
		points[i] = offset(rng.Float64()*extent, rng.Float64()*extent, i)
	}
	return points
}

func newTestEngine(strategy Strategy, index IndexType) *Engine {
	opts := DefaultOptions()
	opts.Strategy = strategy
	opts.Index = index
	opts.Workers = 4
	return NewEngine(zap.NewNop(), opts)
}

func allEngines() map[string]*Engine {
	return map[string]*Engine{
		"star grid":        newTestEngine(StarStrategy, GridIndex),
		"star rtree":       newTestEngine(StarStrategy, RtreeIndex),
		"components grid":  newTestEngine(ConnectedComponentsStrategy, GridIndex),
		"components rtree": newTestEngine(ConnectedComponentsStrategy, RtreeIndex),
		"parallel grid":    newTestEngine(ParallelComponentsStrategy, GridIndex),
	}
}

func TestAggregateScenarios(t *testing.T) {
	for name, engine := range allEngines() {
		t.Run(name, func(t *testing.T) {
			t.Run("two points 5 m apart merge at the midpoint", func(t *testing.T) {
				points := []datastructure.GeoPoint{offset(0, 0, 1), offset(3, 4, 2)}

				res, err := engine.Aggregate(points, 100)
				require.NoError(t, err)
				require.Len(t, res.Clusters, 1)

				c := res.Clusters[0]
				assert.Equal(t, 1, c.GroupID)
				assert.Equal(t, []int{0, 1}, c.Members)
				assert.InDelta(t, (points[0].Lon+points[1].Lon)/2, c.Lon, 1e-6)
				assert.InDelta(t, (points[0].Lat+points[1].Lat)/2, c.Lat, 1e-6)
			})

			t.Run("two points 500 m apart stay separate", func(t *testing.T) {
				points := []datastructure.GeoPoint{offset(0, 0, 1), offset(300, 400, 2)}

				res, err := engine.Aggregate(points, 100)
				require.NoError(t, err)
				require.Len(t, res.Clusters, 2)

				for i, c := range res.Clusters {
					assert.Equal(t, i+1, c.GroupID)
					assert.Equal(t, []int{i}, c.Members)
					assert.InDelta(t, points[i].Lon, c.Lon, 1e-9)
					assert.InDelta(t, points[i].Lat, c.Lat, 1e-9)
				}
			})

			t.Run("empty input", func(t *testing.T) {
				res, err := engine.Aggregate(nil, 100)
				require.NoError(t, err)
				assert.NotNil(t, res.Clusters)
				assert.Empty(t, res.Clusters)
				assert.Empty(t, res.ByGroupID())
			})

			t.Run("radius 0 gives singletons", func(t *testing.T) {
				points := []datastructure.GeoPoint{
					offset(0, 0, 1),
					offset(1, 0, 2),
					offset(0, 1, 3),
					// coincident with the first one
					offset(0, 0, 4),
				}

				res, err := engine.Aggregate(points, 0)
				require.NoError(t, err)
				require.Len(t, res.Clusters, len(points))
				for i, c := range res.Clusters {
					assert.Equal(t, []int{i}, c.Members)
					assert.InDelta(t, points[i].Lon, c.Lon, 1e-9)
					assert.InDelta(t, points[i].Lat, c.Lat, 1e-9)
				}
			})

			t.Run("square with an interior point uses the hull centroid", func(t *testing.T) {
				for _, interior := range [][2]float64{{5, 5}, {1, 8}, {9.5, 0.5}} {
					corners := []datastructure.GeoPoint{
						offset(0, 0, 1),
						offset(10, 0, 2),
						offset(10, 10, 3),
						offset(0, 10, 4),
					}
					points := append(append([]datastructure.GeoPoint{}, corners...), offset(interior[0], interior[1], 5))

					res, err := engine.Aggregate(points, 50)
					require.NoError(t, err)
					require.Len(t, res.Clusters, 1)

					c := res.Clusters[0]
					assert.Equal(t, []int{0, 1, 2, 3, 4}, c.Members)
					centerLon := (corners[0].Lon + corners[1].Lon + corners[2].Lon + corners[3].Lon) / 4
					centerLat := (corners[0].Lat + corners[1].Lat + corners[2].Lat + corners[3].Lat) / 4
					assert.InDelta(t, centerLon, c.Lon, 1e-9)
					assert.InDelta(t, centerLat, c.Lat, 1e-9)
				}
			})
		})
	}
}

func TestAggregateCollinearGroup(t *testing.T) {
	engine := newTestEngine(StarStrategy, GridIndex)
	points := []datastructure.GeoPoint{offset(0, 0, 1), offset(10, 0, 2), offset(40, 0, 3)}

	res, err := engine.Aggregate(points, 50)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)

	// the hull of collinear points is its two extremes, so the representative is their midpoint.
	cartesian, ref := geo.ToCartesian(points)
	expected := geo.ToGeographic(datastructure.Centroid([]datastructure.CartesianPoint{cartesian[0], cartesian[2]}), ref)
	assert.InDelta(t, expected.Lon, res.Clusters[0].Lon, 1e-12)
	assert.InDelta(t, expected.Lat, res.Clusters[0].Lat, 1e-12)
}

func TestAggregateDeterminism(t *testing.T) {
	points := randomGeoPoints(3000, 11, 2000)

	for name, engine := range allEngines() {
		t.Run(name, func(t *testing.T) {
			first, err := engine.Aggregate(points, 40)
			require.NoError(t, err)
			second, err := engine.Aggregate(points, 40)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestAggregatePartition(t *testing.T) {
	points := randomGeoPoints(2500, 5, 1500)

	for name, engine := range allEngines() {
		t.Run(name, func(t *testing.T) {
			res, err := engine.Aggregate(points, 35)
			require.NoError(t, err)
			assert.Equal(t, len(points), res.InputCount)

			seen := make([]int, len(points))
			for i, c := range res.Clusters {
				assert.Equal(t, i+1, c.GroupID)
				assert.NotEmpty(t, c.Members)
				assert.Contains(t, c.Members, c.Seed)
				for _, idx := range c.Members {
					seen[idx]++
				}
			}
			for idx, count := range seen {
				assert.Equal(t, 1, count, "index %d assigned %d times", idx, count)
			}
		})
	}
}

func TestStarContainment(t *testing.T) {
	points := randomGeoPoints(2500, 17, 1500)
	radius := 35.0
	cartesian, _ := geo.ToCartesian(points)

	res, err := newTestEngine(StarStrategy, GridIndex).Aggregate(points, radius)
	require.NoError(t, err)

	for _, c := range res.Clusters {
		// the seed is the lowest unprocessed index when it is reached
		assert.Equal(t, c.Members[0], c.Seed)
		for _, idx := range c.Members {
			assert.LessOrEqual(t, datastructure.SquaredDistance(cartesian[c.Seed], cartesian[idx]), radius*radius)
		}
	}
}

func TestStarOrderSensitivity(t *testing.T) {
	a := offset(0, 0, 1)
	b := offset(60, 0, 2)
	c := offset(120, 0, 3)

	engine := newTestEngine(StarStrategy, GridIndex)

	t.Run("seed at the end of the chain", func(t *testing.T) {
		res, err := engine.Aggregate([]datastructure.GeoPoint{a, b, c}, 100)
		require.NoError(t, err)
		require.Len(t, res.Clusters, 2)
		assert.Equal(t, []int{0, 1}, res.Clusters[0].Members)
		assert.Equal(t, []int{2}, res.Clusters[1].Members)
	})

	t.Run("seed in the middle of the chain", func(t *testing.T) {
		res, err := engine.Aggregate([]datastructure.GeoPoint{b, a, c}, 100)
		require.NoError(t, err)
		require.Len(t, res.Clusters, 1)
		assert.Equal(t, 0, res.Clusters[0].Seed)
		assert.Equal(t, []int{0, 1, 2}, res.Clusters[0].Members)

		// satellites are not within radius of each other
		assert.Greater(t, geo.HaversineDistance(a.Lat, a.Lon, c.Lat, c.Lon), 100.0)
	})

	t.Run("components ignore the order", func(t *testing.T) {
		components := newTestEngine(ConnectedComponentsStrategy, GridIndex)
		for _, order := range [][]datastructure.GeoPoint{{a, b, c}, {b, a, c}, {c, b, a}} {
			res, err := components.Aggregate(order, 100)
			require.NoError(t, err)
			require.Len(t, res.Clusters, 1)
			assert.Equal(t, []int{0, 1, 2}, res.Clusters[0].Members)
		}
	})
}

func TestIndexesAndStrategiesAgree(t *testing.T) {
	points := randomGeoPoints(4000, 23, 3000)

	run := func(strategy Strategy, index IndexType) *Result {
		res, err := newTestEngine(strategy, index).Aggregate(points, 45)
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(StarStrategy, GridIndex).Clusters, run(StarStrategy, RtreeIndex).Clusters)

	components := run(ConnectedComponentsStrategy, GridIndex)
	assert.Equal(t, components.Clusters, run(ConnectedComponentsStrategy, RtreeIndex).Clusters)
	assert.Equal(t, components.Clusters, run(ParallelComponentsStrategy, GridIndex).Clusters)
	assert.Equal(t, components.Clusters, run(ParallelComponentsStrategy, RtreeIndex).Clusters)

	// components never split what star merges
	assert.LessOrEqual(t, len(components.Clusters), len(run(StarStrategy, GridIndex).Clusters))
}

func TestAggregateInvalidRadius(t *testing.T) {
	engine := newTestEngine(StarStrategy, GridIndex)
	points := []datastructure.GeoPoint{offset(0, 0, 1)}

	for _, radius := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := engine.Aggregate(points, radius)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRadius))

		var pkgErr *pkg.Error
		require.True(t, errors.As(err, &pkgErr))
		assert.Equal(t, pkg.ErrBadParamInput, pkgErr.Code())
	}
}

type countingProgress struct {
	total int
}

func (c *countingProgress) Add(num int) error {
	c.total += num
	return nil
}

func TestAggregateProgress(t *testing.T) {
	points := randomGeoPoints(500, 3, 500)

	for _, strategy := range []Strategy{StarStrategy, ConnectedComponentsStrategy, ParallelComponentsStrategy} {
		progress := &countingProgress{}
		opts := DefaultOptions()
		opts.Strategy = strategy
		opts.Progress = progress

		_, err := NewEngine(zap.NewNop(), opts).Aggregate(points, 20)
		require.NoError(t, err)
		assert.Equal(t, len(points), progress.total, strategy.String())
	}
}

func TestParseOptions(t *testing.T) {
	strategy, err := ParseStrategy("Components")
	assert.NoError(t, err)
	assert.Equal(t, ConnectedComponentsStrategy, strategy)

	strategy, err = ParseStrategy("")
	assert.NoError(t, err)
	assert.Equal(t, StarStrategy, strategy)

	_, err = ParseStrategy("dbscan")
	assert.Error(t, err)

	index, err := ParseIndexType("rtree")
	assert.NoError(t, err)
	assert.Equal(t, RtreeIndex, index)

	_, err = ParseIndexType("kdtree")
	assert.Error(t, err)

	assert.Equal(t, "parallel", ParallelComponentsStrategy.String())
	assert.Equal(t, "grid", GridIndex.String())
}
