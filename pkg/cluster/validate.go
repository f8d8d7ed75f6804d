package cluster

import (
	"errors"
	"math"

	"github.com/lintang-b-s/geo-aggregator/pkg"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

var (
	ErrInvalidRadius = errors.New("invalid radius")
	ErrInvalidPoint  = errors.New("invalid point")
)

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateRadius. radius must be finite & > 0.
func ValidateRadius(radius float64) error {
	if !isFinite(radius) || radius <= 0 {
		return pkg.WrapErrorf(ErrInvalidRadius, pkg.ErrBadParamInput, "radius must be a finite number greater than 0, got %v", radius)
	}
	return nil
}

// ValidatePoints checks every coordinate is finite & inside [-180,180] x [-90,90]. empty input is valid.
func ValidatePoints(points []datastructure.GeoPoint) error {
	for i, p := range points {
		if !isFinite(p.Lon) || !isFinite(p.Lat) {
			return pkg.WrapErrorf(ErrInvalidPoint, pkg.ErrBadParamInput, "point %d has a non finite coordinate", i)
		}
		if p.Lon < -180 || p.Lon > 180 {
			return pkg.WrapErrorf(ErrInvalidPoint, pkg.ErrBadParamInput, "point %d longitude %v out of range [-180, 180]", i, p.Lon)
		}
		if p.Lat < -90 || p.Lat > 90 {
			return pkg.WrapErrorf(ErrInvalidPoint, pkg.ErrBadParamInput, "point %d latitude %v out of range [-90, 90]", i, p.Lat)
		}
	}
	return nil
}

// ValidateInput runs before Engine.Aggregate. the engine itself assumes radius-validated, finite input.
func ValidateInput(points []datastructure.GeoPoint, radius float64) error {
	if err := ValidateRadius(radius); err != nil {
		return err
	}
	return ValidatePoints(points)
}
