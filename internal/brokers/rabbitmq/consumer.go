package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
	"github.com/streadway/amqp"
)

type PhotoService interface {
	AddPhotos(ctx context.Context, newphotos *model.NewPhotos, traceid string) *service.ServiceResponse
}

// PhotoUploadedEvent is sent by the upload service once files are stored.
type PhotoUploadedEvent struct {
	FileNames     []string `json:"file_names"`
	OriginalNames []string `json:"original_names"`
	Traceid       string   `json:"traceid"`
}

type RabbitConsumer struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	queue        amqp.Queue
	config       configs.RabbitMQConfig
	logproducer  LogProducer
	photoservice PhotoService
	ctx          context.Context
	cancel       context.CancelFunc
	wg           *sync.WaitGroup
}

func NewRabbitConsumer(config configs.RabbitMQConfig, logproducer LogProducer, photoservice PhotoService) (*RabbitConsumer, error) {
	conn, err := amqp.Dial(connectionString(config))
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to connect to Rabbit-Consumer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to open a channel to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	closeAll := func() {
		channel.Close()
		conn.Close()
	}
	err = channel.ExchangeDeclare(config.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to declare an exchange to Rabbit-Consumer: %v", err)
		closeAll()
		return nil, err
	}
	queue, err := channel.QueueDeclare(config.Queue, true, false, false, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to declare a queue to Rabbit-Consumer: %v", err)
		closeAll()
		return nil, err
	}
	err = channel.QueueBind(queue.Name, model.PhotoUploadedKey, config.Exchange, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to bind a queue to Rabbit-Consumer: %v", err)
		closeAll()
		return nil, err
	}
	err = channel.Qos(10, 0, false)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to set QoS to Rabbit-Consumer: %v", err)
		closeAll()
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	rc := &RabbitConsumer{
		conn:         conn,
		channel:      channel,
		queue:        queue,
		config:       config,
		logproducer:  logproducer,
		photoservice: photoservice,
		ctx:          ctx,
		cancel:       cancel,
		wg:           &sync.WaitGroup{},
	}
	rc.wg.Add(1)
	go rc.readEvent()
	log.Println("[DEBUG] [PhotoLike-Service] Successful connect to Rabbit-Consumer")
	return rc, nil
}
func (rc *RabbitConsumer) readEvent() {
	const place = "RabbitConsumer-ReadEvent"
	defer rc.wg.Done()
	msgs, err := rc.channel.Consume(
		rc.queue.Name,
		rc.config.ConsumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to consume messages: %v", err)
		return
	}
	for {
		select {
		case <-rc.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return
			}
			rc.handleMessage(msg)
		}
	}
}

// handleMessage acks processed and unknown messages, drops malformed or
// invalid ones, and requeues on server errors.
func (rc *RabbitConsumer) handleMessage(msg amqp.Delivery) {
	const place = "RabbitConsumer-HandleMessage"
	var newmsg PhotoUploadedEvent
	err := json.Unmarshal(msg.Body, &newmsg)
	if err != nil {
		rc.logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, newmsg.Traceid, fmt.Sprintf("Failed to unmarshal message: %v", err))
		metrics.PhotoLikeRabbitEventsTotal.WithLabelValues(msg.RoutingKey, "malformed").Inc()
		msg.Nack(false, false)
		return
	}
	switch msg.RoutingKey {
	case model.PhotoUploadedKey:
		rc.logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, newmsg.Traceid, fmt.Sprintf("Received photo uploaded event for %d files", len(newmsg.FileNames)))
		ctx, cancel := context.WithTimeout(rc.ctx, 5*time.Second)
		resp := rc.photoservice.AddPhotos(ctx, &model.NewPhotos{FileNames: newmsg.FileNames, OriginalNames: newmsg.OriginalNames}, newmsg.Traceid)
		cancel()
		if resp.Errors != nil {
			if resp.Errors.Type == erro.ServerErrorType {
				metrics.PhotoLikeRabbitEventsTotal.WithLabelValues(msg.RoutingKey, "requeued").Inc()
				msg.Nack(false, true)
				return
			}
			metrics.PhotoLikeRabbitEventsTotal.WithLabelValues(msg.RoutingKey, "rejected").Inc()
			msg.Nack(false, false)
			return
		}
		metrics.PhotoLikeRabbitEventsTotal.WithLabelValues(msg.RoutingKey, "processed").Inc()
	default:
		rc.logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, newmsg.Traceid, fmt.Sprintf("Unknown routing key: %s", msg.RoutingKey))
		metrics.PhotoLikeRabbitEventsTotal.WithLabelValues(msg.RoutingKey, "ignored").Inc()
	}
	err = msg.Ack(false)
	if err != nil {
		rc.logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, newmsg.Traceid, fmt.Sprintf("Failed to acknowledge message: %v", err))
	}
}
func (rc *RabbitConsumer) Close() {
	rc.cancel()
	rc.channel.Cancel(rc.config.ConsumerTag, false)
	rc.wg.Wait()
	rc.channel.Close()
	rc.conn.Close()
	log.Println("[DEBUG] [PhotoLike-Service] Successful close Rabbit-Consumer")
}
