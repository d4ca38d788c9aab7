package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-booking/internal/middlewares"
	"clinic-booking/internal/models"
	"clinic-booking/internal/services"
)

func TestListAppointmentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockAppointmentLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "appointments returned",
			mockSetup: func(m *MockAppointmentLister) {
				m.EXPECT().
					ListAll(gomock.Any()).
					Return([]models.AppointmentDB{
						{ID: uuid.New(), PatientName: "Maria Silva", AppointmentDate: "2025-09-01", AppointmentTime: "09:00", Status: models.StatusScheduled},
						{ID: uuid.New(), PatientName: "Jose Santos", AppointmentDate: "2025-09-01", AppointmentTime: "10:00", Status: models.StatusConfirmed},
					}, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty store yields empty array",
			mockSetup: func(m *MockAppointmentLister) {
				m.EXPECT().
					ListAll(gomock.Any()).
					Return(nil, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "store error",
			mockSetup: func(m *MockAppointmentLister) {
				m.EXPECT().
					ListAll(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockAppointmentLister(ctrl)
			tt.mockSetup(mockReader)

			handler := NewListAppointmentsHandler(mockReader)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var appointments []models.AppointmentDB
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appointments))
				assert.Len(t, appointments, tt.expectedLen)
			}
		})
	}
}

func TestUpdateAppointmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	appointmentID := uuid.New()

	validBody := UpdateAppointmentRequest{
		PatientName:     "Maria Silva",
		AppointmentDate: "2025-09-01",
		AppointmentTime: "10:00",
		Status:          models.StatusConfirmed,
	}

	tests := []struct {
		name          string
		id            string
		reqBody       UpdateAppointmentRequest
		authenticated bool
		mockSetup     func(m *MockAppointmentUpdater)
		expectedCode  int
		expectedBody  map[string]string
	}{
		{
			name:          "success",
			id:            appointmentID.String(),
			reqBody:       validBody,
			authenticated: true,
			mockSetup: func(m *MockAppointmentUpdater) {
				m.EXPECT().
					Update(gomock.Any(), adminID, appointmentID, "Maria Silva", "2025-09-01", "10:00", models.StatusConfirmed).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Appointment updated successfully"},
		},
		{
			name:          "target slot already booked",
			id:            appointmentID.String(),
			reqBody:       validBody,
			authenticated: true,
			mockSetup: func(m *MockAppointmentUpdater) {
				m.EXPECT().
					Update(gomock.Any(), adminID, appointmentID, "Maria Silva", "2025-09-01", "10:00", models.StatusConfirmed).
					Return(services.ErrSlotTaken)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "This time slot is already booked"},
		},
		{
			name:          "not authenticated",
			id:            appointmentID.String(),
			reqBody:       validBody,
			authenticated: false,
			expectedCode:  401,
			expectedBody:  map[string]string{"error": "Unauthorized"},
		},
		{
			name:          "invalid id",
			id:            "not-a-uuid",
			reqBody:       validBody,
			authenticated: true,
			expectedCode:  400,
			expectedBody:  map[string]string{"error": "Invalid appointment id"},
		},
		{
			name: "unrecognized status",
			id:   appointmentID.String(),
			reqBody: UpdateAppointmentRequest{
				PatientName:     "Maria Silva",
				AppointmentDate: "2025-09-01",
				AppointmentTime: "10:00",
				Status:          "rescheduled",
			},
			authenticated: true,
			expectedCode:  400,
			expectedBody:  map[string]string{"error": "Invalid status"},
		},
		{
			name: "invalid date",
			id:   appointmentID.String(),
			reqBody: UpdateAppointmentRequest{
				PatientName:     "Maria Silva",
				AppointmentDate: "tomorrow",
				AppointmentTime: "10:00",
				Status:          models.StatusConfirmed,
			},
			authenticated: true,
			expectedCode:  400,
			expectedBody:  map[string]string{"error": "Invalid appointment date"},
		},
		{
			name:          "internal server error",
			id:            appointmentID.String(),
			reqBody:       validBody,
			authenticated: true,
			mockSetup: func(m *MockAppointmentUpdater) {
				m.EXPECT().
					Update(gomock.Any(), adminID, appointmentID, "Maria Silva", "2025-09-01", "10:00", models.StatusConfirmed).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAppointmentUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Put("/api/admin/appointments/{id}", NewUpdateAppointmentHandler(mockSvc))

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPut, "/api/admin/appointments/"+tt.id, bytes.NewBuffer(bodyBytes))
			if tt.authenticated {
				ctx := middlewares.SetUserIDToContext(req.Context(), adminID)
				req = req.WithContext(ctx)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestDeleteAppointmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	appointmentID := uuid.New()

	tests := []struct {
		name          string
		id            string
		authenticated bool
		mockSetup     func(m *MockAppointmentDeleter)
		expectedCode  int
		expectedBody  map[string]string
	}{
		{
			name:          "success",
			id:            appointmentID.String(),
			authenticated: true,
			mockSetup: func(m *MockAppointmentDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), adminID, appointmentID).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Appointment deleted successfully"},
		},
		{
			name:          "not authenticated",
			id:            appointmentID.String(),
			authenticated: false,
			expectedCode:  401,
			expectedBody:  map[string]string{"error": "Unauthorized"},
		},
		{
			name:          "invalid id",
			id:            "42",
			authenticated: true,
			expectedCode:  400,
			expectedBody:  map[string]string{"error": "Invalid appointment id"},
		},
		{
			name:          "internal server error",
			id:            appointmentID.String(),
			authenticated: true,
			mockSetup: func(m *MockAppointmentDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), adminID, appointmentID).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAppointmentDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/api/admin/appointments/{id}", NewDeleteAppointmentHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/appointments/"+tt.id, nil)
			if tt.authenticated {
				ctx := middlewares.SetUserIDToContext(req.Context(), adminID)
				req = req.WithContext(ctx)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
