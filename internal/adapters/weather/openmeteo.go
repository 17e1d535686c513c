package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"strconv"
	"time"
)

// OpenMeteoProvider implements ports.CoordinateWeatherProvider using the
// keyless Open-Meteo forecast endpoint.
type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
}

func NewOpenMeteoProvider(baseURL string, timeout time.Duration) *OpenMeteoProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &OpenMeteoProvider{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WeatherCode *int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (o *OpenMeteoProvider) CurrentAt(ctx context.Context, at domain.Coordinates) (_ domain.WeatherInfo, err error) {
	defer obs.Time(ctx, "openmeteo.CurrentAt")(&err)

	params := url.Values{
		"latitude":        {strconv.FormatFloat(at.Lat, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(at.Lon, 'f', -1, 64)},
		"current_weather": {"true"},
	}
	endpoint := o.baseURL + "/v1/forecast?" + params.Encode()

	var decoded openMeteoResponse
	if err := getJSON(ctx, o.session, endpoint, &decoded); err != nil {
		return domain.WeatherInfo{}, fmt.Errorf("open-meteo %v: %w", at, err)
	}

	cw := decoded.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.WeatherCode == nil {
		return domain.WeatherInfo{}, fmt.Errorf("open-meteo %v: response missing current_weather fields", at)
	}

	return domain.WeatherInfo{
		TemperatureCelsius: *cw.Temperature,
		Summary:            DescribeWeatherCode(*cw.WeatherCode),
	}, nil
}
