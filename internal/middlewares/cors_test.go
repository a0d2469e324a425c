package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name              string
		allowed           []string
		origin            string
		expectOrigin      string
		expectCredentials string
	}{
		{
			name:              "AllowedOrigin",
			allowed:           []string{"https://app.example.com"},
			origin:            "https://app.example.com",
			expectOrigin:      "https://app.example.com",
			expectCredentials: "true",
		},
		{
			name:    "DisallowedOrigin",
			allowed: []string{"https://app.example.com"},
			origin:  "https://evil.example.com",
		},
		{
			name:         "WildcardWithoutCredentials",
			allowed:      []string{"*"},
			origin:       "https://any.example.com",
			expectOrigin: "*",
		},
		{
			name:   "EmptyListDisablesCORS",
			origin: "https://app.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clothes", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			CORS(tt.allowed)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectCredentials, rr.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
