package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsRoutedRequests(t *testing.T) {
	m := NewHTTPMetrics()

	router := mux.NewRouter()
	router.Use(m.Middleware)
	router.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.HandleFunc("/api/suppliers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET")

	for _, path := range []string{"/api/orders/abc", "/api/orders/def", "/api/suppliers"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	// The endpoint label carries the route template, not the raw path
	counted := testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/api/orders/{id}", "200"))
	assert.Equal(t, 2.0, counted)

	counted = testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/api/suppliers", "404"))
	assert.Equal(t, 1.0, counted)
}
