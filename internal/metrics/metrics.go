package metrics

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PhotoLikeTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_requests_total",
	Help: "Total number of requests to PhotoLike-Service",
}, []string{"path"})
var PhotoLikeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photolike_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in PhotoLike-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5},
}, []string{"handler"})
var PhotoLikeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_errors_total",
	Help: "Total number of errors encountered by the PhotoLike-Service",
}, []string{"error_type"})
var PhotoLikeTotalSuccessfulRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_successful_requests_total",
	Help: "Total number of successful requests to PhotoLike-Service",
}, []string{"handler"})
var PhotoLikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_toggles_total",
	Help: "Total number of applied like toggles",
}, []string{"direction"})
var PhotoLikeRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_rate_limit_exceeded_total",
	Help: "Total number of requests rejected by the rate limiter",
}, []string{"path"})
var PhotoLikeMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photolike_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var PhotoLikeDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photolike_service_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the database",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var PhotoLikeDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_db_queries_total",
	Help: "Total number of queries executed on the database",
}, []string{"query_type"})
var PhotoLikeDBErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_db_errors_total",
	Help: "Total number of errors encountered when interacting with the database",
}, []string{"error_type", "query_type"})
var PhotoLikeCacheQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photolike_service_cache_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the cache",
	Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"query_type"})
var PhotoLikeCacheQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_cache_queries_total",
	Help: "Total number of queries executed on the cache",
}, []string{"query_type"})
var PhotoLikeCacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_cache_errors_total",
	Help: "Total number of errors encountered when interacting with the cache",
}, []string{"query_type"})
var PhotoLikeKafkaProducerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_kafka_producer_messages_sent_total",
	Help: "Total number of messages sent to Kafka by PhotoLike-Service",
}, []string{"topics"})
var PhotoLikeKafkaProducerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_kafka_producer_send_errors_total",
	Help: "Total number of errors encountered while sending messages to Kafka by PhotoLike-Service",
}, []string{"topics"})
var PhotoLikeKafkaProducerBufferSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photolike_service_kafka_producer_queue_size",
	Help: "Current size of the Kafka producer message queue in PhotoLike-Service",
})
var PhotoLikeRabbitEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photolike_service_rabbit_events_total",
	Help: "Total number of RabbitMQ events handled by PhotoLike-Service",
}, []string{"routing_key", "result"})
var PhotoLikeTaskQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photolike_service_task_queue_size",
	Help: "Current number of queued background tasks",
})
var stop = make(chan struct{})
var stopOnce sync.Once

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				PhotoLikeMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop() {
	stopOnce.Do(func() { close(stop) })
	log.Println("[INFO] [PhotoLike-Service] Successful close Metrics-Goroutine")
}
