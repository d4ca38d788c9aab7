package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
)

// AppointmentWriteRepository handles appointment write operations.
type AppointmentWriteRepository struct {
	db *sqlx.DB
}

func NewAppointmentWriteRepository(db *sqlx.DB) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db}
}

// Save inserts a new appointment after checking that its (date, time) slot is
// free, inside a single transaction. The UNIQUE constraint on the slot is the
// arbiter under concurrent inserts: exactly one of two racing bookings commits,
// the other gets ErrDuplicate.
func (r *AppointmentWriteRepository) Save(ctx context.Context, a *models.AppointmentDB) error {
	const checkQuery = `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE appointment_date = $1 AND appointment_time = $2
		)
	`
	const insertQuery = `
		INSERT INTO appointments (id, patient_name, appointment_date, appointment_time, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin booking transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	var occupied bool
	if err := tx.GetContext(ctx, &occupied, checkQuery, a.AppointmentDate, a.AppointmentTime); err != nil {
		logger.Log.Errorw("slot check failed",
			"query", strings.Join(strings.Fields(checkQuery), " "),
			"args", []any{a.AppointmentDate, a.AppointmentTime},
			"error", err,
		)
		return err
	}
	if occupied {
		return ErrDuplicate
	}

	_, err = tx.ExecContext(ctx, insertQuery,
		a.ID, a.PatientName, a.AppointmentDate, a.AppointmentTime, a.Status, a.UserID)

	logger.Log.Infow("appointment write",
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{a.ID, a.AppointmentDate, a.AppointmentTime, a.UserID},
		"error", err,
	)

	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update rewrites an appointment's fields and status. Moving it onto an
// occupied slot violates the slot constraint and returns ErrDuplicate.
func (r *AppointmentWriteRepository) Update(ctx context.Context, id uuid.UUID, patientName, date, timeSlot, status string) error {
	const query = `
		UPDATE appointments
		SET patient_name = $1, appointment_date = $2, appointment_time = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`
	args := []any{patientName, date, timeSlot, status, id}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("appointment update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if uniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Delete removes an appointment. Deleting a missing id is not an error.
func (r *AppointmentWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM appointments
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("appointment delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}

// AppointmentReadRepository handles appointment read operations.
type AppointmentReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentReadRepository(db *sqlx.DB) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db}
}

// ListAll returns every appointment ordered by slot.
func (r *AppointmentReadRepository) ListAll(ctx context.Context) ([]models.AppointmentDB, error) {
	const query = `
		SELECT id, patient_name, appointment_date, appointment_time, status, user_id, created_at, updated_at
		FROM appointments
		ORDER BY appointment_date, appointment_time
	`

	var appointments []models.AppointmentDB
	err := r.db.SelectContext(ctx, &appointments, query)

	logger.Log.Infow("appointment list",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(appointments),
		"error", err,
	)

	return appointments, err
}

// GetOccupiedTimes returns the booked times for a given date.
func (r *AppointmentReadRepository) GetOccupiedTimes(ctx context.Context, date string) ([]string, error) {
	const query = `
		SELECT appointment_time
		FROM appointments
		WHERE appointment_date = $1
		ORDER BY appointment_time
	`

	var times []string
	err := r.db.SelectContext(ctx, &times, query, date)

	logger.Log.Infow("occupied times read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{date},
		"result", times,
		"error", err,
	)

	return times, err
}
