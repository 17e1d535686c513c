package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance *float64 `json:"distance"`
			Duration *float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route retrieves distance and duration of the first path from -> to.
func (o *ORSRouteProvider) Route(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
	mode domain.TravelMode,
) (_ domain.RouteInfo, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, Profile(mode))

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{from.CoordsToList(), to.CoordsToList()},
	})
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func(attemptCtx context.Context) (*http.Request, error) {
		return o.newRequest(attemptCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return domain.RouteInfo{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return domain.RouteInfo{}, fmt.Errorf("directions returned no routes")
	}

	summary := dr.Routes[0].Summary
	if summary.Distance == nil || summary.Duration == nil {
		return domain.RouteInfo{}, fmt.Errorf("directions returned incomplete summary")
	}

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return domain.RouteInfo{
		DistanceMeters:  int(math.Round(*summary.Distance)),
		DurationSeconds: int(math.Round(*summary.Duration)),
	}, nil
}
