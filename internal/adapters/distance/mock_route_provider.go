package distance

import (
	"context"
	"fmt"
	"route-weather-service/internal/domain"
	"sync/atomic"
)

type MockPair struct {
	From, To domain.Coordinates
	Meters   int
	Seconds  int
}

// MockRouteProvider serves fixed routes between known coordinate pairs
// and counts how often it was asked.
type MockRouteProvider struct {
	m     map[string]domain.RouteInfo
	calls atomic.Int64
}

func NewMockRouteProvider(pairs []MockPair) *MockRouteProvider {
	m := make(map[string]domain.RouteInfo, len(pairs))
	for _, p := range pairs {
		m[pairKey(p.From, p.To)] = domain.RouteInfo{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockRouteProvider{m: m}
}

func pairKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("%v|%v", from.CoordsToList(), to.CoordsToList())
}

func (p *MockRouteProvider) Route(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (domain.RouteInfo, error) {
	p.calls.Add(1)

	r, ok := p.m[pairKey(from, to)]
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("missing pair %v -> %v", from, to)
	}

	return r, nil
}

// Calls reports the number of Route invocations so far.
func (p *MockRouteProvider) Calls() int {
	return int(p.calls.Load())
}
