package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/streadway/amqp"
)

// NewLikeEvent publishes a stored toggle with up to publishAttempts attempts.
func (rp *RabbitProducer) NewLikeEvent(ctx context.Context, routingKey string, event *model.LikeEvent, place string, traceid string) error {
	body, err := json.Marshal(event)
	if err != nil {
		rp.logProducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to marshal message: %v", err))
		return err
	}
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(rp.retryDelay)
			select {
			case <-timer.C:
			case <-rp.context.Done():
				timer.Stop()
			case <-ctx.Done():
				timer.Stop()
			}
		}
		select {
		case <-rp.context.Done():
			rp.logProducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, "RabbitProducer's context was canceled")
			return rp.context.Err()
		case <-ctx.Done():
			rp.logProducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, "Task context was canceled")
			return ctx.Err()
		default:
			err = rp.channel.Publish(
				rp.config.Exchange,
				routingKey,
				false,
				false,
				amqp.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp.Persistent,
					Timestamp:    time.Now(),
					Body:         body,
				},
			)
			if err == nil {
				rp.logProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Like Event with routing key: %s was published on attempt %d", routingKey, attempt))
				return nil
			}
			rp.logProducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Attempt %d failed to publish Like Event: %v", attempt, err))
		}
	}
	return err
}
