package domain

// Distance and travel duration between two places.
// A RouteInfo is always present in a lookup result; when no real routing
// is available it carries a synthetic estimate.
type RouteInfo struct {
	DistanceMeters  int `json:"distanceMeters"`
	DurationSeconds int `json:"durationSeconds"`
}
