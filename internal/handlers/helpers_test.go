package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("11111111-2222-3333-4444-555555555555")

var testSubject = policy.Subject{UserID: testUserID}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, r)
}

// authed attaches claims for testUserID, as the auth middleware would.
func authed(r *http.Request) *http.Request {
	claims := &jwt.Claims{UserID: testUserID, TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
	return r.WithContext(jwt.WithClaims(r.Context(), claims))
}

// withID sets the chi {id} route parameter.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}
