package driver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alorle/nexum-portal/metrics"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// NewMetricsMiddleware counts requests by top-level route and status code.
// Routes are collapsed to their first path segment so ids never become labels.
func NewMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RecordHTTPRequest(routeLabel(r.URL.Path), strconv.Itoa(rec.status))
	})
}

func routeLabel(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if segment == "" {
		return "/"
	}
	return "/" + segment
}
