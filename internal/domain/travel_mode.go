package domain

import (
	"fmt"
	"strings"
)

// TravelMode is the transport mode a route is requested for.
type TravelMode string

const (
	ModeDriving   TravelMode = "DRIVING"
	ModeWalking   TravelMode = "WALKING"
	ModeBicycling TravelMode = "BICYCLING"
	ModeTransit   TravelMode = "TRANSIT"
)

// TravelModes lists every accepted mode in display order.
var TravelModes = []TravelMode{ModeDriving, ModeWalking, ModeBicycling, ModeTransit}

// Parse a mode case-insensitively.
func ParseTravelMode(s string) (TravelMode, error) {
	m := TravelMode(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range TravelModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("parse travel mode %q: %w", s, ErrInvalidTravelMode)
}

func (m TravelMode) String() string { return string(m) }
