package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/fiton/internal/facades"
	"github.com/sbilibin2017/fiton/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTryOnHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTryOnGenerator(ctrl)
	handler := NewTryOnHandler(mockSvc)

	tests := []struct {
		name         string
		err          error
		result       *services.TryOnResult
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:         "success",
			result:       &services.TryOnResult{ImageURL: "data:image/png;base64,AAAA", Prompt: "p"},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"imageUrl": "data:image/png;base64,AAAA", "prompt": "p"},
		},
		{
			name:         "success with stored copy",
			result:       &services.TryOnResult{ImageURL: "data:image/png;base64,AAAA", Prompt: "p", StoredURL: "https://s3/x.png"},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"imageUrl": "data:image/png;base64,AAAA", "prompt": "p", "storedUrl": "https://s3/x.png"},
		},
		{
			name:         "measurements missing",
			err:          services.ErrMeasurementsRequired,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "User measurements not found. Please add them first."},
		},
		{
			name:         "height too low",
			err:          services.ErrHeightTooLow,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Virtual Try-On requires height to be at least 150cm (4'11\") to comply with AI safety guidelines. Please update your measurements to adult proportions."},
		},
		{
			name:         "wardrobe not found",
			err:          services.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "Selected wardrobe outfit not found."},
		},
		{
			name:         "not configured",
			err:          facades.ErrVertexNotConfigured,
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": facades.ErrVertexNotConfigured.Error()},
		},
		{
			name:         "no predictions",
			err:          facades.ErrNoPredictions,
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": facades.ErrNoPredictions.Error()},
		},
		{
			name:         "upstream error passes message through",
			err:          &facades.UpstreamError{Vendor: "vertex", Message: "Quota exceeded for aiplatform.googleapis.com"},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Failed to generate image: Quota exceeded for aiplatform.googleapis.com"},
		},
		{
			name:         "storage error is not exposed",
			err:          errors.New(`pq: relation "wardrobes" does not exist`),
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Generate(gomock.Any(), testSubject, int64(3)).Return(tt.result, tt.err)

			rr := httptest.NewRecorder()
			handler(rr, authed(newRequest(http.MethodPost, "/api/virtual-try-on/generate", `{"wardrobeId":3}`)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
		})
	}

	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/virtual-try-on/generate", `{"wardrobeId":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
