package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/clothes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clothes/{id}", "404"))

	for _, id := range []string{"1", "2", "3"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/clothes/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clothes/{id}", "404"))
	assert.Equal(t, float64(3), after-before)
}

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(generations.WithLabelValues("vertex", "false"))
	RecordGeneration("vertex", 120*time.Millisecond, false)
	after := testutil.ToFloat64(generations.WithLabelValues("vertex", "false"))
	assert.Equal(t, float64(1), after-before)

	before = testutil.ToFloat64(generations.WithLabelValues("unknown", "true"))
	RecordGeneration("", time.Millisecond, true)
	after = testutil.ToFloat64(generations.WithLabelValues("unknown", "true"))
	assert.Equal(t, float64(1), after-before)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordGeneration("imagineart", time.Second, true)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "fiton_generation_requests_total"))
}
