package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
)

// openWeatherResponse mirrors the fields we need from the OpenWeatherMap
// current-weather payload.
type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// WeatherHTTPFacade fetches current conditions from the OpenWeatherMap API.
type WeatherHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewWeatherHTTPFacade creates a new facade. baseURL points at the
// current-weather endpoint, e.g. https://api.openweathermap.org/data/2.5/weather.
func NewWeatherHTTPFacade(baseURL, apiKey string, timeout time.Duration) *WeatherHTTPFacade {
	return &WeatherHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// GetCurrent returns the current weather at the given coordinates, reduced to
// a description, the temperature in Celsius and a will-it-rain flag.
func (f *WeatherHTTPFacade) GetCurrent(ctx context.Context, lat, lon string) (*models.Weather, error) {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", f.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "pt_br")

	reqURL := f.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("weather request failed", "lat", lat, "lon", lon, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("weather API returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("weather API status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode weather response", "error", err)
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather API returned no conditions")
	}

	willRain := false
	for _, condition := range payload.Weather {
		main := strings.ToLower(condition.Main)
		if strings.Contains(main, "rain") || strings.Contains(main, "drizzle") || strings.Contains(main, "clouds") {
			willRain = true
			break
		}
	}

	return &models.Weather{
		Description: payload.Weather[0].Description,
		Temp:        payload.Main.Temp,
		WillRain:    willRain,
	}, nil
}
