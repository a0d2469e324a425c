package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	handler := NewLogoutHandler(mockSvc)

	t.Run("revokes token", func(t *testing.T) {
		mockSvc.EXPECT().
			Logout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, claims *jwt.Claims) error {
				assert.Equal(t, "jti", claims.TokenID)
				return nil
			})

		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/auth/logout", "")))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{"message": "Logged out successfully"}, decodeMap(t, rr))
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		rr := httptest.NewRecorder()
		handler(rr, authed(newRequest(http.MethodPost, "/api/auth/logout", "")))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, newRequest(http.MethodPost, "/api/auth/logout", ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
