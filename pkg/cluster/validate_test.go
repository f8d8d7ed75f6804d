package cluster

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	valid := []datastructure.GeoPoint{
		datastructure.NewGeoPoint(110.81, -7.56, 1),
		datastructure.NewGeoPoint(-180, 90, 2),
	}

	tests := []struct {
		name    string
		points  []datastructure.GeoPoint
		radius  float64
		wantErr error
	}{
		{name: "valid", points: valid, radius: 150},
		{name: "empty points are not an error", points: nil, radius: 150},
		{name: "zero radius", points: valid, radius: 0, wantErr: ErrInvalidRadius},
		{name: "negative radius", points: valid, radius: -10, wantErr: ErrInvalidRadius},
		{name: "nan radius", points: valid, radius: math.NaN(), wantErr: ErrInvalidRadius},
		{name: "infinite radius", points: valid, radius: math.Inf(1), wantErr: ErrInvalidRadius},
		{
			name:    "nan longitude",
			points:  []datastructure.GeoPoint{datastructure.NewGeoPoint(math.NaN(), 0, 1)},
			radius:  10,
			wantErr: ErrInvalidPoint,
		},
		{
			name:    "infinite latitude",
			points:  []datastructure.GeoPoint{datastructure.NewGeoPoint(0, math.Inf(-1), 1)},
			radius:  10,
			wantErr: ErrInvalidPoint,
		},
		{
			name:    "longitude out of range",
			points:  append(valid, datastructure.NewGeoPoint(181, 0, 3)),
			radius:  10,
			wantErr: ErrInvalidPoint,
		},
		{
			name:    "latitude out of range",
			points:  []datastructure.GeoPoint{datastructure.NewGeoPoint(0, -90.5, 1)},
			radius:  10,
			wantErr: ErrInvalidPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.points, tt.radius)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("message names the offending point", func(t *testing.T) {
		err := ValidatePoints(append(valid, datastructure.NewGeoPoint(181, 0, 3)))
		assert.Contains(t, err.Error(), "point 2")
	})
}
