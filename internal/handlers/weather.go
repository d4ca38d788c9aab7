package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
)

// WeatherReader defines the interface that the weather facade must implement.
type WeatherReader interface {
	GetCurrent(ctx context.Context, lat, lon string) (*models.Weather, error)
}

// WeatherErrorResponse represents an error response for the weather endpoint
// swagger:model WeatherErrorResponse
type WeatherErrorResponse struct {
	// Error message
	// default: Coordinates (lat and lon) are required
	Error string `json:"error"`
}

// NewWeatherHandler returns an HTTP handler proxying the weather lookup.
// @Summary Current weather
// @Description Returns current conditions and a rain expectation for the given coordinates.
// @Tags weather
// @Produce json
// @Param lat query string true "Latitude"
// @Param lon query string true "Longitude"
// @Success 200 {object} models.Weather "Current weather"
// @Failure 400 {object} handlers.WeatherErrorResponse "Missing coordinates"
// @Router /api/weather [get]
func NewWeatherHandler(weather WeatherReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		lat := r.URL.Query().Get("lat")
		lon := r.URL.Query().Get("lon")
		if lat == "" || lon == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WeatherErrorResponse{Error: "Coordinates (lat and lon) are required"})
			return
		}

		current, err := weather.GetCurrent(ctx, lat, lon)
		if err != nil {
			logger.Log.Errorw("weather lookup failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WeatherErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(current)
	}
}
