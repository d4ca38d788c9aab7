package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/middlewares"
	"clinic-booking/internal/models"
	"clinic-booking/internal/services"
)

// Booker defines the interface that the booking service must implement.
type Booker interface {
	Book(ctx context.Context, userID uuid.UUID, patientName, date, timeSlot string) error
}

// CreateAppointmentRequest represents the JSON body for booking a slot
// swagger:model CreateAppointmentRequest
type CreateAppointmentRequest struct {
	// Patient name
	// required: true
	// default: Maria Silva
	PatientName string `json:"patientName"`

	// Appointment date (YYYY-MM-DD)
	// required: true
	// default: 2025-09-01
	AppointmentDate string `json:"appointmentDate"`

	// Appointment time (HH:MM)
	// required: true
	// default: 10:00
	AppointmentTime string `json:"appointmentTime"`
}

// CreateAppointmentResponse represents a successful booking response
// swagger:model CreateAppointmentResponse
type CreateAppointmentResponse struct {
	// Success message
	// default: Appointment created successfully
	Message string `json:"message"`
}

// AppointmentErrorResponse represents an error response for appointment operations
// swagger:model AppointmentErrorResponse
type AppointmentErrorResponse struct {
	// Error message
	// default: This time slot is already booked
	Error string `json:"error"`
}

// NewCreateAppointmentHandler returns an HTTP handler for booking an appointment.
// @Summary Book an appointment
// @Description Books a (date, time) slot for the authenticated user. At most one appointment may occupy a slot.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body handlers.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} handlers.CreateAppointmentResponse "Appointment created"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Slot already booked / invalid request"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Router /api/appointments [post]
// @Security BearerAuth
func NewCreateAppointmentHandler(svc Booker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.PatientName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Patient name is required"})
			return
		}
		if _, err := time.Parse(models.DateLayout, req.AppointmentDate); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment date"})
			return
		}
		if _, err := time.Parse(models.TimeLayout, req.AppointmentTime); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment time"})
			return
		}

		if err := svc.Book(ctx, userID, req.PatientName, req.AppointmentDate, req.AppointmentTime); err != nil {
			switch {
			case errors.Is(err, services.ErrSlotTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "This time slot is already booked"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateAppointmentResponse{
			Message: "Appointment created successfully",
		})
	}
}
