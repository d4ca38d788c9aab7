package models

import (
	"time"

	"github.com/google/uuid"
)

// Recognized appointment statuses. New bookings start as StatusScheduled;
// only admins move an appointment between statuses.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Layouts for the slot fields as they travel over the API and into the store.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// AppointmentDB represents an appointment row in the database.
// The pair (AppointmentDate, AppointmentTime) is unique across all rows.
type AppointmentDB struct {
	ID              uuid.UUID `json:"id" db:"id"`                             // Primary key
	PatientName     string    `json:"patient_name" db:"patient_name"`         // Who the slot is for
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"` // DateLayout
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"` // TimeLayout
	Status          string    `json:"status" db:"status"`                     // One of the Status* constants
	UserID          uuid.UUID `json:"user_id" db:"user_id"`                   // User who booked the slot
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
