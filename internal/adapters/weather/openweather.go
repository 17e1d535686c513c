package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"time"
)

// OpenWeatherProvider implements ports.PlaceWeatherProvider using the
// OpenWeather current weather endpoint. It requires an API key.
type OpenWeatherProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOpenWeatherProvider(apiKey, baseURL string, timeout time.Duration) (*OpenWeatherProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenWeather api key is empty")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &OpenWeatherProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type openWeatherResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (o *OpenWeatherProvider) CurrentByPlace(ctx context.Context, placeName string) (_ domain.WeatherInfo, err error) {
	defer obs.Time(ctx, "openweather.CurrentByPlace")(&err)

	params := url.Values{
		"q":     {placeName},
		"appid": {o.apiKey},
		"units": {"metric"},
	}
	endpoint := o.baseURL + "/data/2.5/weather?" + params.Encode()

	var decoded openWeatherResponse
	if err := getJSON(ctx, o.session, endpoint, &decoded); err != nil {
		return domain.WeatherInfo{}, fmt.Errorf("openweather %q: %w", placeName, err)
	}

	if decoded.Main == nil || decoded.Main.Temp == nil {
		return domain.WeatherInfo{}, fmt.Errorf("openweather %q: response missing main.temp", placeName)
	}

	summary := "no data"
	if len(decoded.Weather) > 0 && decoded.Weather[0].Description != "" {
		summary = decoded.Weather[0].Description
	}

	return domain.WeatherInfo{
		TemperatureCelsius: *decoded.Main.Temp,
		Summary:            summary,
	}, nil
}
