package rabbitmq

import (
	"fmt"
	"strconv"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
)

type LogProducer interface {
	NewPhotoLikeLog(level, place, traceid, msg string)
}

func connectionString(config configs.RabbitMQConfig) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
}
