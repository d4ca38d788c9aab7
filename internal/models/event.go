package models

// BookingEvent is published to Kafka whenever an appointment changes.
type BookingEvent struct {
	EventID         string `json:"event_id"`         // Unique event identifier
	AppointmentID   string `json:"appointment_id"`   // Appointment the event refers to
	UserID          string `json:"user_id"`          // Acting user
	AppointmentDate string `json:"appointment_date"` // Slot date
	AppointmentTime string `json:"appointment_time"` // Slot time
	Operation       string `json:"operation"`        // booked, updated or cancelled
	Timestamp       int64  `json:"timestamp"`        // Unix seconds
}
