package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-booking/internal/models"
)

func newAppointment(userID uuid.UUID, date, timeSlot string) *models.AppointmentDB {
	return &models.AppointmentDB{
		ID:              uuid.New(),
		PatientName:     "Maria Silva",
		AppointmentDate: date,
		AppointmentTime: timeSlot,
		Status:          models.StatusScheduled,
		UserID:          userID,
	}
}

func createTestUser(t *testing.T, db *sqlx.DB, email string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, NewUserWriteRepository(db).Save(ctx, "Test User", email, "hash"))

	user, err := NewUserReadRepository(db).GetByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.ID
}

func TestAppointmentWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "patient@example.com")
	repo := NewAppointmentWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, newAppointment(userID, "2025-09-01", "10:00"))
	assert.NoError(t, err)

	t.Run("SameSlotRejected", func(t *testing.T) {
		err := repo.Save(ctx, newAppointment(userID, "2025-09-01", "10:00"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("DistinctTimeAccepted", func(t *testing.T) {
		err := repo.Save(ctx, newAppointment(userID, "2025-09-01", "11:00"))
		assert.NoError(t, err)
	})

	t.Run("DistinctDateAccepted", func(t *testing.T) {
		err := repo.Save(ctx, newAppointment(userID, "2025-09-02", "10:00"))
		assert.NoError(t, err)
	})
}

func TestAppointmentWriteRepository_Save_ConcurrentSameSlot(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "racer@example.com")
	repo := NewAppointmentWriteRepository(db)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Save(ctx, newAppointment(userID, "2025-09-05", "14:00"))
		}(i)
	}
	wg.Wait()

	// exactly one booking wins the slot, every other attempt sees the conflict
	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrDuplicate)
		}
	}
	assert.Equal(t, 1, successes)

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM appointments WHERE appointment_date=$1 AND appointment_time=$2", "2025-09-05", "14:00")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAppointmentWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "update@example.com")
	repo := NewAppointmentWriteRepository(db)
	ctx := context.Background()

	first := newAppointment(userID, "2025-09-10", "09:00")
	second := newAppointment(userID, "2025-09-10", "10:00")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("FieldsRewritten", func(t *testing.T) {
		err := repo.Update(ctx, first.ID, "Maria S. Santos", "2025-09-10", "09:30", models.StatusConfirmed)
		assert.NoError(t, err)

		var got struct {
			PatientName     string `db:"patient_name"`
			AppointmentTime string `db:"appointment_time"`
			Status          string `db:"status"`
		}
		err = db.Get(&got, "SELECT patient_name, appointment_time, status FROM appointments WHERE id=$1", first.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Maria S. Santos", got.PatientName)
		assert.Equal(t, "09:30", got.AppointmentTime)
		assert.Equal(t, models.StatusConfirmed, got.Status)
	})

	t.Run("MoveOntoOccupiedSlotRejected", func(t *testing.T) {
		err := repo.Update(ctx, first.ID, "Maria S. Santos", "2025-09-10", "10:00", models.StatusConfirmed)
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestAppointmentWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "delete@example.com")
	repo := NewAppointmentWriteRepository(db)
	ctx := context.Background()

	appt := newAppointment(userID, "2025-09-15", "08:00")
	require.NoError(t, repo.Save(ctx, appt))

	err := repo.Delete(ctx, appt.ID)
	assert.NoError(t, err)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM appointments WHERE id=$1", appt.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	t.Run("MissingIDIsNotAnError", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.NoError(t, err)
	})

	t.Run("SlotFreedAfterDelete", func(t *testing.T) {
		err := repo.Save(ctx, newAppointment(userID, "2025-09-15", "08:00"))
		assert.NoError(t, err)
	})
}

func TestAppointmentReadRepository_ListAll(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "list@example.com")
	writeRepo := NewAppointmentWriteRepository(db)
	readRepo := NewAppointmentReadRepository(db)
	ctx := context.Background()

	// inserted out of order to exercise the ordering clause
	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-21", "10:00")))
	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-20", "15:00")))
	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-20", "09:00")))

	appointments, err := readRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, appointments, 3)
	assert.Equal(t, "09:00", appointments[0].AppointmentTime)
	assert.Equal(t, "15:00", appointments[1].AppointmentTime)
	assert.Equal(t, "2025-09-21", appointments[2].AppointmentDate)
}

func TestAppointmentReadRepository_GetOccupiedTimes(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "occupied@example.com")
	writeRepo := NewAppointmentWriteRepository(db)
	readRepo := NewAppointmentReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-25", "11:00")))
	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-25", "09:00")))
	require.NoError(t, writeRepo.Save(ctx, newAppointment(userID, "2025-09-26", "09:00")))

	times, err := readRepo.GetOccupiedTimes(ctx, "2025-09-25")
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, times)

	t.Run("FreeDay", func(t *testing.T) {
		times, err := readRepo.GetOccupiedTimes(ctx, "2025-12-25")
		assert.NoError(t, err)
		assert.Empty(t, times)
	})
}
