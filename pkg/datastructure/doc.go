package datastructure

// GeoPoint model info
// @Description input point to aggregate. longitude & latitude in degrees.
type GeoPoint struct {
	Lon float64 `json:"lon"` // longitude in degrees
	Lat float64 `json:"lat"` // latitude in degrees
	ID  int     `json:"oid"` // opaque object id from the caller, not required to be unique
}

func NewGeoPoint(lon, lat float64, id int) GeoPoint {
	return GeoPoint{
		Lon: lon,
		Lat: lat,
		ID:  id,
	}
}

// CartesianPoint is a point in the local tangent plane, x & y in meters.
// OriginalIndex is the position of the point in the input sequence. processed state during clustering is tracked by this index.
type CartesianPoint struct {
	X             float64
	Y             float64
	ID            int
	OriginalIndex int
}

func NewCartesianPoint(x, y float64, id, originalIndex int) CartesianPoint {
	return CartesianPoint{
		X:             x,
		Y:             y,
		ID:            id,
		OriginalIndex: originalIndex,
	}
}
