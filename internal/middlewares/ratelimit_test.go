package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Handler(next)

	userA := &jwt.Claims{UserID: uuid.New()}
	userB := &jwt.Claims{UserID: uuid.New()}

	call := func(claims *jwt.Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/avatar/generate", nil)
		req = req.WithContext(jwt.WithClaims(req.Context(), claims))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call(userA).Code)
	assert.Equal(t, http.StatusOK, call(userA).Code)

	limited := call(userA)
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, call(userB).Code)
}

func TestRateLimiter_Unlimited(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(10, 1)
	for i := 0; i <= maxTrackedLimiters; i++ {
		rl.getLimiter(uuid.NewString())
	}
	rl.Cleanup()
	assert.Empty(t, rl.limiters)
}
