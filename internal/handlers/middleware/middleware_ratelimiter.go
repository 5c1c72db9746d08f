package middleware

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"golang.org/x/time/rate"
)

func (m *Middleware) RateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = PlaceRateLimiter
		traceID, _ := r.Context().Value("traceID").(string)
		ip := clientIP(r)
		limiter := getLimit(m, ip)
		if !limiter.Allow() {
			logRequest(r, place, traceID, true, "Too many requests")
			m.logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceID, "Too many requests")
			metrics.PhotoLikeRateLimitExceededTotal.WithLabelValues(r.URL.Path).Inc()
			response.BadResponse(r, w, http.StatusTooManyRequests, response.ClientErrorKey, "Too Many Requests", traceID, place, m.logproducer)
			return
		}
		next.ServeHTTP(w, r)
	})
}
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
func getLimit(m *Middleware, ip string) *rate.Limiter {
	if entry, exist := m.rateLimiters.Load(ip); exist {
		e := entry.(*RateLimiterEntry)
		e.mu.Lock()
		e.LastUsed = time.Now()
		e.mu.Unlock()
		return e.Limiter
	}
	newEntry := &RateLimiterEntry{
		Limiter:  rate.NewLimiter(m.limit, m.burst),
		LastUsed: time.Now(),
	}
	actual, _ := m.rateLimiters.LoadOrStore(ip, newEntry)
	return actual.(*RateLimiterEntry).Limiter
}
func cleanLimit(m *Middleware) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			log.Println("[INFO] [PhotoLike-Service] [RateLimiter] Successful completion of RateLimiter")
			return
		case <-ticker.C:
			m.rateLimiters.Range(func(key, value any) bool {
				entry := value.(*RateLimiterEntry)
				entry.mu.Lock()
				idle := time.Since(entry.LastUsed)
				entry.mu.Unlock()
				if idle >= 5*time.Minute {
					m.rateLimiters.Delete(key)
				}
				return true
			})
		}
	}
}
