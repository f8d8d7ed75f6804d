package geo

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestWayCentroid(t *testing.T) {
	nodeCoords := map[osm.NodeID][2]float64{
		1: {110.0, -7.0},
		2: {110.2, -7.0},
		3: {110.2, -7.2},
		4: {110.0, -7.2},
	}

	t.Run("closed way counts first node once", func(t *testing.T) {
		way := NewOSMWay(99, []osm.NodeID{1, 2, 3, 4, 1})
		p, ok := wayCentroid(way, nodeCoords)
		assert.True(t, ok)
		assert.InDelta(t, 110.1, p.Lon, 1e-12)
		assert.InDelta(t, -7.1, p.Lat, 1e-12)
		assert.Equal(t, 99, p.ID)
	})

	t.Run("missing nodes skipped", func(t *testing.T) {
		way := NewOSMWay(5, []osm.NodeID{1, 2, 42})
		p, ok := wayCentroid(way, nodeCoords)
		assert.True(t, ok)
		assert.InDelta(t, 110.1, p.Lon, 1e-12)
		assert.InDelta(t, -7.0, p.Lat, 1e-12)
	})

	t.Run("no known nodes", func(t *testing.T) {
		_, ok := wayCentroid(NewOSMWay(6, []osm.NodeID{40, 41}), nodeCoords)
		assert.False(t, ok)
	})
}
