package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/middlewares"
	"clinic-booking/internal/models"
	"clinic-booking/internal/services"
)

// AppointmentLister defines the interface that the appointment store must implement.
type AppointmentLister interface {
	ListAll(ctx context.Context) ([]models.AppointmentDB, error)
}

// AppointmentUpdater defines the interface that the appointment service must implement.
type AppointmentUpdater interface {
	Update(ctx context.Context, adminID, id uuid.UUID, patientName, date, timeSlot, status string) error
}

// AppointmentDeleter defines the interface that the appointment service must implement.
type AppointmentDeleter interface {
	Delete(ctx context.Context, adminID, id uuid.UUID) error
}

// UpdateAppointmentRequest represents the JSON body for an admin update
// swagger:model UpdateAppointmentRequest
type UpdateAppointmentRequest struct {
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

	// Status
	// required: true
	// default: confirmed
	Status string `json:"status"`
}

// AdminMessageResponse represents a successful admin mutation
// swagger:model AdminMessageResponse
type AdminMessageResponse struct {
	// Success message
	// default: Appointment updated successfully
	Message string `json:"message"`
}

// NewListAppointmentsHandler returns an HTTP handler listing every appointment.
// @Summary List all appointments
// @Description Returns every appointment ordered by date and time. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {array} models.AppointmentDB "All appointments"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AppointmentErrorResponse "Admin access required"
// @Router /api/admin/appointments [get]
// @Security BearerAuth
func NewListAppointmentsHandler(reader AppointmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		appointments, err := reader.ListAll(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list appointments", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
			return
		}
		if appointments == nil {
			appointments = []models.AppointmentDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(appointments)
	}
}

// NewUpdateAppointmentHandler returns an HTTP handler for an admin appointment update.
// @Summary Update an appointment
// @Description Rewrites an appointment's fields and status. Admin only. Moving it onto an occupied slot is rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Appointment id"
// @Param request body handlers.UpdateAppointmentRequest true "Update request"
// @Success 200 {object} handlers.AdminMessageResponse "Appointment updated"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid request / slot already booked"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AppointmentErrorResponse "Admin access required"
// @Router /api/admin/appointments/{id} [put]
// @Security BearerAuth
func NewUpdateAppointmentHandler(svc AppointmentUpdater) http.HandlerFunc {
	recognizedStatuses := map[string]struct{}{
		models.StatusScheduled: {},
		models.StatusConfirmed: {},
		models.StatusCancelled: {},
		models.StatusCompleted: {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		adminID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment id"})
			return
		}

		var req UpdateAppointmentRequest
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
		if _, ok := recognizedStatuses[req.Status]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid status"})
			return
		}

		if err := svc.Update(ctx, adminID, id, req.PatientName, req.AppointmentDate, req.AppointmentTime, req.Status); err != nil {
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{
			Message: "Appointment updated successfully",
		})
	}
}

// NewDeleteAppointmentHandler returns an HTTP handler for an admin appointment delete.
// @Summary Delete an appointment
// @Description Removes an appointment. Admin only.
// @Tags admin
// @Produce json
// @Param id path string true "Appointment id"
// @Success 200 {object} handlers.AdminMessageResponse "Appointment deleted"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid appointment id"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AppointmentErrorResponse "Admin access required"
// @Router /api/admin/appointments/{id} [delete]
// @Security BearerAuth
func NewDeleteAppointmentHandler(svc AppointmentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		adminID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment id"})
			return
		}

		if err := svc.Delete(ctx, adminID, id); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{
			Message: "Appointment deleted successfully",
		})
	}
}
