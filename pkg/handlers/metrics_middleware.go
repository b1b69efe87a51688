package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"

	"github.com/gorilla/mux"
)

// MetricsMiddleware records the count and duration of each API call.
// The path label is the mux route template so that path parameters do
// not explode the metric cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		code := strconv.Itoa(recorder.status)
		metrics.IncreaseAPICallsCountMetric(r.Method, path, code)
		metrics.UpdateAPICallDurationMetric(r.Method, path, code, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
