package geo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePointsJSON(t *testing.T) {
	points, radius, err := DecodePointsJSON(strings.NewReader(
		`{"radius": 150, "points": [{"oid": 3, "lon": 110.8, "lat": -7.5}, {"lon": 110.9, "lat": -7.6}]}`))
	require.NoError(t, err)
	require.NotNil(t, radius)
	assert.Equal(t, 150.0, *radius)
	assert.Equal(t, []datastructure.GeoPoint{
		datastructure.NewGeoPoint(110.8, -7.5, 3),
		datastructure.NewGeoPoint(110.9, -7.6, 0),
	}, points)

	t.Run("no radius", func(t *testing.T) {
		_, radius, err := DecodePointsJSON(strings.NewReader(`{"points": []}`))
		require.NoError(t, err)
		assert.Nil(t, radius)
	})

	for name, body := range map[string]string{
		"missing points": `{"radius": 10}`,
		"missing lat":    `{"points": [{"lon": 1}]}`,
		"not numeric":    `{"points": [{"lon": "a", "lat": 1}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodePointsJSON(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestReadPointsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"points": [{"lon": 1, "lat": 2}]}`), 0644))

	points, _, err := ReadPointsJSON(path)
	require.NoError(t, err)
	assert.Len(t, points, 1)

	_, _, err = ReadPointsJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
