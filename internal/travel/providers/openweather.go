package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/laveehere/wanderbot/internal/travel"
)

// OpenWeatherProvider implements travel.WeatherProvider for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  client,
		retry:   defaultRetry,
		circuit: newBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Current fetches and normalizes the current weather for a city.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (travel.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return travel.WeatherSnapshot{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("q", city)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
			Pressure float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	}

	if err := getJSON(ctx, p.client, p.circuit, p.retry, buildRequest, &payload); err != nil {
		return travel.WeatherSnapshot{}, err
	}

	ts := time.Unix(payload.Dt, 0).UTC()
	if payload.Dt == 0 {
		ts = time.Now().UTC()
	}

	cond := travel.ConditionUnknown
	description := ""
	if len(payload.Weather) > 0 {
		cond = mapOpenWeatherCondition(payload.Weather[0].Main)
		description = payload.Weather[0].Description
	}

	return travel.WeatherSnapshot{
		City:        city,
		Timestamp:   ts,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Pressure:    payload.Main.Pressure,
		Condition:   cond,
		Description: description,
		Source:      p.name,
		Live:        true,
	}, nil
}

func mapOpenWeatherCondition(main string) travel.Condition {
	switch main {
	case "Clear":
		return travel.ConditionClear
	case "Clouds":
		return travel.ConditionCloudy
	case "Rain", "Drizzle":
		return travel.ConditionRain
	case "Snow":
		return travel.ConditionSnow
	case "Thunderstorm":
		return travel.ConditionStorm
	case "Mist", "Fog", "Haze":
		return travel.ConditionMist
	default:
		return travel.ConditionUnknown
	}
}
