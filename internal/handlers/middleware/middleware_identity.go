package middleware

import (
	"context"
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
)

// Identity copies the gateway's X-User-ID header into the request context.
// A missing header is not an error here; each handler decides whether it
// needs an identity.
func (m *Middleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ := r.Context().Value("traceID").(string)
		userID := r.Header.Get("X-User-ID")
		if userID != "" {
			ctx := context.WithValue(r.Context(), "userID", userID)
			r = r.WithContext(ctx)
			m.logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, PlaceIdentity, traceID, "Request with user identity")
		}
		next.ServeHTTP(w, r)
	})
}
