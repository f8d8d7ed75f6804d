package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

type jsonPoint struct {
	OID int      `json:"oid"`
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

type jsonPointsFile struct {
	Radius *float64    `json:"radius"`
	Points []jsonPoint `json:"points"`
}

// ReadPointsJSON reads a file shaped like the /api/aggregate request body. radius is nil if the file has none.
func ReadPointsJSON(path string) ([]datastructure.GeoPoint, *float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return DecodePointsJSON(f)
}

func DecodePointsJSON(r io.Reader) ([]datastructure.GeoPoint, *float64, error) {
	var file jsonPointsFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("error when decoding points json: %w", err)
	}
	if file.Points == nil {
		return nil, nil, fmt.Errorf("points json has no \"points\" field")
	}

	points := make([]datastructure.GeoPoint, len(file.Points))
	for i, p := range file.Points {
		if p.Lon == nil || p.Lat == nil {
			return nil, nil, fmt.Errorf("point %d is missing lon or lat", i)
		}
		points[i] = datastructure.NewGeoPoint(*p.Lon, *p.Lat, p.OID)
	}
	return points, file.Radius, nil
}
