// Package weather wraps the OpenWeather current-conditions API and derives a
// categorical fire risk level from temperature, humidity and wind.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"go-firewatch/types"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client fetches current weather for a coordinate.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// openWeatherResponse covers the fields we consume from the 2.5 weather API.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
		Deg   float64 `json:"deg"`
	} `json:"wind"`
}

// Get returns a weather snapshot for the coordinate with the derived fire
// risk attached.
func (c *Client) Get(ctx context.Context, lat, lng float64) (*types.WeatherData, error) {
	if c.apiKey == "" {
		return nil, errors.New("OpenWeather API key not configured")
	}

	url := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&appid=%s&units=metric", c.baseURL, lat, lng, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("OpenWeather returned status: " + resp.Status)
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	temperature := int(math.Round(raw.Main.Temp))
	windSpeed := int(math.Round(raw.Wind.Speed * 3.6)) // m/s to km/h

	return &types.WeatherData{
		Temperature:   temperature,
		Humidity:      raw.Main.Humidity,
		WindSpeed:     windSpeed,
		WindDirection: windDirection(raw.Wind.Deg),
		FireRisk:      CalculateFireRisk(temperature, raw.Main.Humidity, windSpeed),
	}, nil
}
