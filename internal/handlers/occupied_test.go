package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupiedTimesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		date          string
		mockSetup     func(m *MockOccupiedTimesReader)
		expectedCode  int
		expectedTimes []string
	}{
		{
			name: "booked times returned",
			date: "2025-09-01",
			mockSetup: func(m *MockOccupiedTimesReader) {
				m.EXPECT().
					GetOccupiedTimes(gomock.Any(), "2025-09-01").
					Return([]string{"09:00", "10:00"}, nil)
			},
			expectedCode:  200,
			expectedTimes: []string{"09:00", "10:00"},
		},
		{
			name: "no bookings yields empty array",
			date: "2025-09-02",
			mockSetup: func(m *MockOccupiedTimesReader) {
				m.EXPECT().
					GetOccupiedTimes(gomock.Any(), "2025-09-02").
					Return(nil, nil)
			},
			expectedCode:  200,
			expectedTimes: []string{},
		},
		{
			name:         "invalid date",
			date:         "01-09-2025",
			expectedCode: 400,
		},
		{
			name: "store error",
			date: "2025-09-03",
			mockSetup: func(m *MockOccupiedTimesReader) {
				m.EXPECT().
					GetOccupiedTimes(gomock.Any(), "2025-09-03").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockOccupiedTimesReader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockReader)
			}

			router := chi.NewRouter()
			router.Get("/api/appointments/occupied/{date}", NewOccupiedTimesHandler(mockReader))

			req := httptest.NewRequest(http.MethodGet, "/api/appointments/occupied/"+tt.date, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var times []string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &times))
				assert.Equal(t, tt.expectedTimes, times)
			}
		})
	}
}
