package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetMeasurementsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMeasurementGetter(ctrl)
	handler := NewGetMeasurementsHandler(mockSvc)
	height := 180.0

	tests := []struct {
		name         string
		auth         bool
		mockSetup    func()
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "found",
			auth: true,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testSubject).Return(&models.MeasurementDB{ID: 1, UserID: testUserID, Height: &height}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			auth: true,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testSubject).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "No measurements found for this user."},
		},
		{
			name: "internal error",
			auth: true,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testSubject).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "unauthorized",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodGet, "/api/avatar/measurements/retrieve", "")
			if tt.auth {
				req = authed(req)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeMap(t, rr)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, body)
			} else {
				assert.Equal(t, float64(180), body["height"])
				assert.Equal(t, testUserID.String(), body["userId"])
			}
		})
	}
}

func TestSaveMeasurementsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMeasurementSaver(ctrl)
	handler := NewSaveMeasurementsHandler(mockSvc)

	t.Run("saves typed input", func(t *testing.T) {
		mockSvc.EXPECT().
			Save(gomock.Any(), testSubject, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ interface{}, in *models.MeasurementInput) (*models.MeasurementDB, error) {
				assert.Equal(t, 172.5, *in.Height)
				assert.Equal(t, "female", *in.Gender)
				assert.Nil(t, in.Weight)
				return &models.MeasurementDB{UserID: testUserID, Height: in.Height, Gender: in.Gender}, nil
			})

		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/avatar/measurements/save", `{"height":172.5,"gender":"female"}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 172.5, decodeMap(t, rr)["height"])
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.EXPECT().
			Save(gomock.Any(), testSubject, gomock.Any()).
			Return(nil, &services.ValidationError{Field: "height", Message: "height must be less than or equal to 300"})

		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/avatar/measurements/save", `{"height":999}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, map[string]any{"error": "height must be less than or equal to 300", "field": "height"}, decodeMap(t, rr))
	})

	t.Run("string typed number is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/avatar/measurements/save", `{"height":"tall"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, map[string]any{"error": "Invalid request body"}, decodeMap(t, rr))
	})
}

func TestDeleteMeasurementsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMeasurementDeleter(ctrl)
	handler := NewDeleteMeasurementsHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), testSubject).Return(nil)
	rr := httptest.NewRecorder()
	handler(rr, authed(newRequest(http.MethodDelete, "/api/avatar/measurements/remove", "")))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Measurements deleted successfully."}, decodeMap(t, rr))

	mockSvc.EXPECT().Delete(gomock.Any(), testSubject).Return(services.ErrNotFound)
	rr = httptest.NewRecorder()
	handler(rr, authed(newRequest(http.MethodDelete, "/api/avatar/measurements/remove", "")))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "No measurements to delete."}, decodeMap(t, rr))
}
