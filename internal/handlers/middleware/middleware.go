package middleware

import (
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"golang.org/x/time/rate"
)

type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed time.Time
	mu       sync.Mutex
}
type Middleware struct {
	logproducer    LogProducer
	rateLimiters   sync.Map
	limit          rate.Limit
	burst          int
	requestTimeout time.Duration
	stopclean      chan struct{}
	stopOnce       sync.Once
}
type LogProducer interface {
	NewPhotoLikeLog(level, place, traceid, msg string)
}

const (
	PlaceLogging     = "Middleware-Logging"
	PlaceRateLimiter = "Middleware-RateLimiter"
	PlaceIdentity    = "Middleware-Identity"
)

func NewMiddleware(logproducer LogProducer, ratecfg configs.RateLimitConfig, requestTimeout time.Duration) *Middleware {
	m := &Middleware{
		logproducer:    logproducer,
		limit:          rate.Limit(ratecfg.RequestsPerSecond),
		burst:          ratecfg.Burst,
		requestTimeout: requestTimeout,
		stopclean:      make(chan struct{}),
	}
	go cleanLimit(m)
	return m
}
func (m *Middleware) Stop() {
	m.stopOnce.Do(func() { close(m.stopclean) })
}
