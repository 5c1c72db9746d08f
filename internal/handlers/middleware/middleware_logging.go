package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
)

func logRequest(r *http.Request, place string, traceID string, isError bool, errorMessage string) {
	ip := r.RemoteAddr
	method := r.Method
	path := r.URL.Path
	if isError {
		log.Printf("[ERROR] [PhotoLike-Service] [%s] [TraceID: %s] [IP: %s] [Method: %s] [Path: %s] Error: %s", place, traceID, ip, method, path, errorMessage)
	} else {
		log.Printf("[INFO] [PhotoLike-Service] [%s] [TraceID: %s] [IP: %s] [Method: %s] [Path: %s]", place, traceID, ip, method, path)
	}
}

// Logging stores the trace id, start time and request deadline in the
// request context.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), "traceID", traceID)
		ctx = context.WithValue(ctx, "starttime", time.Now())
		if m.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, m.requestTimeout)
			defer cancel()
		}
		r = r.WithContext(ctx)
		w.Header().Set("X-Trace-ID", traceID)
		metrics.PhotoLikeTotalRequests.WithLabelValues(r.URL.Path).Inc()
		logRequest(r, PlaceLogging, traceID, false, "")
		next.ServeHTTP(w, r)
	})
}
