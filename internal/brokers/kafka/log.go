package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PhotoLikeLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (kf *KafkaProducer) NewPhotoLikeLog(level, place, traceid, msg string) {
	newlog := PhotoLikeLog{
		Level:     level,
		Service:   "PhotoLike-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	if kf.writer == nil {
		kf.writeFallback(newlog)
		return
	}
	select {
	case <-kf.context.Done():
		log.Printf("[WARN] [PhotoLike-Service] Producer closing, dropping log: %+v", newlog)
		return
	case kf.logchan <- newlog:
		metrics.PhotoLikeKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
	default:
		log.Printf("[WARN] [PhotoLike-Service] Log channel is full, dropping log: %+v", newlog)
	}
}
func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [PhotoLike-Service] [Worker: %v] Context canceled, stopping Kafka-worker...", num)
			return
		case logg := <-kf.logchan:
			metrics.PhotoLikeKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
			topic := kf.topics[logg.Level]
			data, err := json.Marshal(logg)
			if err != nil {
				log.Printf("[ERROR] [PhotoLike-Service] [Worker: %v] Failed to marshal log: %v", num, err)
				continue
			}
			ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
			err = kf.writeWithRetry(ctx, num, kafka.Message{Topic: topic, Key: []byte(logg.TraceID), Value: data})
			cancel()
			if err != nil {
				metrics.PhotoLikeKafkaProducerErrorsTotal.WithLabelValues(topic).Inc()
				log.Printf("[ERROR] [PhotoLike-Service] [Worker: %v] Failed to send log after all retries: %v, (%v)", num, err, logg)
				continue
			}
			metrics.PhotoLikeKafkaProducerMessagesSent.WithLabelValues(topic).Inc()
		}
	}
}
func (kf *KafkaProducer) writeWithRetry(ctx context.Context, num int, msg kafka.Message) error {
	var err error
	for i := 0; i < 3; i++ {
		select {
		case <-ctx.Done():
			log.Printf("[WARN] [PhotoLike-Service] [Worker: %v] Context canceled or expired, dropping log", num)
			return ctx.Err()
		default:
			err = kf.writer.WriteMessages(ctx, msg)
			if err == nil {
				return nil
			}
			log.Printf("[WARN] [PhotoLike-Service] [Worker: %v] Retry %d failed to send log: %v", num, i+1, err)
			time.Sleep(1 * time.Second)
		}
	}
	return err
}

func (kf *KafkaProducer) writeFallback(logg PhotoLikeLog) {
	fields := []zap.Field{zap.String("place", logg.Place), zap.String("trace_id", logg.TraceID)}
	switch logg.Level {
	case LogLevelError:
		kf.fallback.Error(logg.Message, fields...)
	case LogLevelWarn:
		kf.fallback.Warn(logg.Message, fields...)
	default:
		kf.fallback.Info(logg.Message, fields...)
	}
}

type serviceLog struct {
	Message string `json:"service_log"`
}

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: logStartService})
}
func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: logCloseService})
}
func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	if kf.writer == nil {
		kf.fallback.Info(logg.Message)
		return
	}
	data, err := json.Marshal(logg)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to marshal log: %v", err)
		return
	}
	for _, topic := range kf.topics {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [PhotoLike-Service] Context canceled or expired before send Service Log")
			return
		default:
			ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
			err = kf.writer.WriteMessages(ctx, kafka.Message{
				Topic: topic,
				Value: data,
			})
			cancel()
			if err != nil {
				log.Printf("[DEBUG] [PhotoLike-Service] Failed to send Service Log(%v): %v", logg, err)
			}
		}
	}
}
