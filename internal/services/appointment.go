package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
	"clinic-booking/internal/repositories"
)

// ErrSlotTaken is returned when the requested (date, time) slot is occupied.
var ErrSlotTaken = errors.New("slot already taken")

// AppointmentWriter defines write operations for appointments.
type AppointmentWriter interface {
	Save(ctx context.Context, a *models.AppointmentDB) error
	Update(ctx context.Context, id uuid.UUID, patientName, date, timeSlot, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AppointmentService handles bookings, admin mutations and event publishing.
type AppointmentService struct {
	writer      AppointmentWriter
	kafkaWriter KafkaWriter
}

// NewAppointmentService creates a new AppointmentService. kafkaWriter may be
// nil when no broker is configured; events are then skipped.
func NewAppointmentService(writer AppointmentWriter, kafkaWriter KafkaWriter) *AppointmentService {
	return &AppointmentService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a booking event to Kafka. Publish failures are logged
// and never fail the request.
func (svc *AppointmentService) publishEvent(ctx context.Context, event models.BookingEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("kafka writer not configured, skipping event", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal booking event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish booking event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("booking event published", "event_id", event.EventID, "operation", event.Operation)
	}
}

// Book creates a scheduled appointment for the given user. Returns ErrSlotTaken
// when the slot is occupied; exactly one of two concurrent bookings for the
// same slot succeeds.
func (svc *AppointmentService) Book(ctx context.Context, userID uuid.UUID, patientName, date, timeSlot string) error {
	appointment := &models.AppointmentDB{
		ID:              uuid.New(),
		PatientName:     patientName,
		AppointmentDate: date,
		AppointmentTime: timeSlot,
		Status:          models.StatusScheduled,
		UserID:          userID,
	}

	if err := svc.writer.Save(ctx, appointment); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Warnw("slot already taken", "date", date, "time", timeSlot)
			return ErrSlotTaken
		}
		logger.Log.Errorw("failed to save appointment", "err", err)
		return err
	}

	svc.publishEvent(ctx, models.BookingEvent{
		EventID:         uuid.NewString(),
		AppointmentID:   appointment.ID.String(),
		UserID:          userID.String(),
		AppointmentDate: date,
		AppointmentTime: timeSlot,
		Operation:       "booked",
		Timestamp:       time.Now().Unix(),
	})

	return nil
}

// Update rewrites an appointment's fields and status on behalf of an admin.
func (svc *AppointmentService) Update(ctx context.Context, adminID, id uuid.UUID, patientName, date, timeSlot, status string) error {
	if err := svc.writer.Update(ctx, id, patientName, date, timeSlot, status); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Warnw("slot already taken", "date", date, "time", timeSlot)
			return ErrSlotTaken
		}
		logger.Log.Errorw("failed to update appointment", "id", id, "err", err)
		return err
	}

	svc.publishEvent(ctx, models.BookingEvent{
		EventID:         uuid.NewString(),
		AppointmentID:   id.String(),
		UserID:          adminID.String(),
		AppointmentDate: date,
		AppointmentTime: timeSlot,
		Operation:       "updated",
		Timestamp:       time.Now().Unix(),
	})

	return nil
}

// Delete removes an appointment on behalf of an admin.
func (svc *AppointmentService) Delete(ctx context.Context, adminID, id uuid.UUID) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete appointment", "id", id, "err", err)
		return err
	}

	svc.publishEvent(ctx, models.BookingEvent{
		EventID:       uuid.NewString(),
		AppointmentID: id.String(),
		UserID:        adminID.String(),
		Operation:     "cancelled",
		Timestamp:     time.Now().Unix(),
	})

	return nil
}
