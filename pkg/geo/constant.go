package geo

const (
	// EARTH_RADIUS_M. mean earth radius used by the local projection & haversine.
	EARTH_RADIUS_M = 6371000.0

	// MaxLocalExtentMeters. above this bounding box diagonal the equirectangular approximation is no longer accurate.
	MaxLocalExtentMeters = 50000.0
)
