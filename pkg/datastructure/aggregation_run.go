package datastructure

import "time"

// AggregatedPoint model info
// @Description representative point of one group.
type AggregatedPoint struct {
	GroupID int     `json:"oid"`               // sequential group id, starts at 1
	Lon     float64 `json:"lon"`               // longitude of the group representative
	Lat     float64 `json:"lat"`               // latitude of the group representative
	Members []int   `json:"members,omitempty"` // input positions (0-based) of the points in this group
}

// AggregationRun model info
// @Description a stored aggregation call.
type AggregationRun struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	Radius       float64           `json:"radius"`        // radius in meters
	Strategy     string            `json:"strategy"`      // star, components or parallel
	SpatialIndex string            `json:"spatial_index"` // grid or rtree
	InputCount   int               `json:"input_count"`
	Clusters     []AggregatedPoint `json:"clusters"`
}
