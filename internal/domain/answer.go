package domain

import "time"

// CombinedAnswer aggregates one route and the weather at its destination,
// keyed by the (origin, destination, mode) triple.
// It is built once per orchestrator miss (or restored from cache) and never mutated.
type CombinedAnswer struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Mode        TravelMode `json:"mode"`
	RouteInfo
	Weather WeatherReport `json:"weather"`
}

// HistoryRecord is a CombinedAnswer stored on behalf of an identified caller.
type HistoryRecord struct {
	ID        int64
	UserID    string
	Answer    CombinedAnswer
	CreatedAt time.Time
}
