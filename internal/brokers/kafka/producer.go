package kafka

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)
const (
	logStartService = "PhotoLike-Service started"
	logCloseService = "PhotoLike-Service stopped"
)

type KafkaProducer struct {
	writer   *kafka.Writer
	logchan  chan PhotoLikeLog
	topics   map[string]string
	wg       *sync.WaitGroup
	context  context.Context
	cancel   context.CancelFunc
	fallback *zap.Logger
}

// NewKafkaProducer starts the sender workers. With Kafka disabled the
// producer writes business logs as JSON lines to stdout instead.
func NewKafkaProducer(config configs.KafkaConfig) *KafkaProducer {
	ctx, cancel := context.WithCancel(context.Background())
	producer := &KafkaProducer{
		logchan: make(chan PhotoLikeLog, 1000),
		topics: map[string]string{
			LogLevelInfo:  config.Topics.InfoLog,
			LogLevelWarn:  config.Topics.WarnLog,
			LogLevelError: config.Topics.ErrorLog,
		},
		wg:      &sync.WaitGroup{},
		context: ctx,
		cancel:  cancel,
	}
	if !config.Enabled {
		producer.fallback = newStdoutLogger()
		log.Println("[DEBUG] [PhotoLike-Service] Kafka-Producer disabled, logs go to stdout")
		return producer
	}
	brokers := strings.Split(config.BootstrapServers, ",")
	var acks kafka.RequiredAcks
	switch config.Acks {
	case "0":
		acks = kafka.RequireNone
	case "1":
		acks = kafka.RequireOne
	case "all":
		acks = kafka.RequireAll
	default:
		acks = kafka.RequireAll
	}
	producer.writer = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		WriteTimeout:           10 * time.Second,
		WriteBackoffMin:        time.Duration(config.RetryBackoffMs) * time.Millisecond,
		WriteBackoffMax:        5 * time.Second,
		BatchSize:              config.BatchSize,
		RequiredAcks:           acks,
		AllowAutoTopicCreation: true,
	}
	for i := 1; i <= 3; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	log.Println("[DEBUG] [PhotoLike-Service] Successful connect to Kafka-Producer")
	return producer
}
func (kf *KafkaProducer) Close() {
	kf.cancel()
	kf.wg.Wait()
	if kf.writer != nil {
		kf.writer.Close()
	}
	if kf.fallback != nil {
		kf.fallback.Sync()
	}
	metrics.PhotoLikeKafkaProducerBufferSize.Set(0)
	log.Println("[DEBUG] [PhotoLike-Service] Successful close Kafka-Producer")
}
func newStdoutLogger() *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zapcore.DebugLevel)
	return zap.New(core).With(zap.String("service", "PhotoLike-Service"))
}
