package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
)

// OccupiedTimesReader defines the interface that the appointment store must implement.
type OccupiedTimesReader interface {
	GetOccupiedTimes(ctx context.Context, date string) ([]string, error)
}

// NewOccupiedTimesHandler returns an HTTP handler listing the booked times of a date.
// @Summary Occupied times for a date
// @Description Returns the already-booked times of a given date so clients can offer free slots.
// @Tags appointments
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} string "Booked times"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid date"
// @Router /api/appointments/occupied/{date} [get]
func NewOccupiedTimesHandler(reader OccupiedTimesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		date := chi.URLParam(r, "date")
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid date"})
			return
		}

		times, err := reader.GetOccupiedTimes(ctx, date)
		if err != nil {
			logger.Log.Errorw("failed to list occupied times", "date", date, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
			return
		}
		if times == nil {
			times = []string{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(times)
	}
}
