package configs

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Listing   ListingConfig   `mapstructure:"listing"`
	Cors      CorsConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	GrpcPort         string        `mapstructure:"grpc_port"`
	MaxHeaderBytes   int           `mapstructure:"max_header_bytes"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
	MaxRecvMsgSize   int           `mapstructure:"max_recv_msg_size"`
	MaxSendMsgSize   int           `mapstructure:"max_send_msg_size"`
	Workers          int           `mapstructure:"workers"`
	TaskQueueSize    int           `mapstructure:"task_queue_size"`
}

type DatabaseConfig struct {
	Backend  string `mapstructure:"backend"`
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RabbitMQConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Name        string `mapstructure:"name"`
	Password    string `mapstructure:"password"`
	Queue       string `mapstructure:"queue"`
	Exchange    string `mapstructure:"exchange"`
	ConsumerTag string `mapstructure:"consumer_tag"`
}

type KafkaConfig struct {
	Enabled          bool        `mapstructure:"enabled"`
	BootstrapServers string      `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int         `mapstructure:"retry_backoff_ms"`
	BatchSize        int         `mapstructure:"batch_size"`
	Acks             string      `mapstructure:"acks"`
	Topics           KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	InfoLog  string `mapstructure:"info_log"`
	ErrorLog string `mapstructure:"error_log"`
	WarnLog  string `mapstructure:"warn_log"`
}

// LedgerConfig controls the like-counter behaviour. ClampAtZero keeps
// photo_likes from going negative; the default mirrors the unclamped counter.
type LedgerConfig struct {
	ClampAtZero bool `mapstructure:"clamp_at_zero"`
}

type ListingConfig struct {
	DefaultLimit  int           `mapstructure:"default_limit"`
	MaxLimit      int           `mapstructure:"max_limit"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

func setDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.grpc_port", "50053")
	viper.SetDefault("server.max_header_bytes", 1<<20)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.request_timeout", 5*time.Second)
	viper.SetDefault("server.graceful_shutdown", 10*time.Second)
	viper.SetDefault("server.max_recv_msg_size", 4<<20)
	viper.SetDefault("server.max_send_msg_size", 4<<20)
	viper.SetDefault("server.workers", 5)
	viper.SetDefault("server.task_queue_size", 1000)
	viper.SetDefault("database.backend", "postgres")
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("listing.default_limit", 5)
	viper.SetDefault("listing.max_limit", 100)
	viper.SetDefault("listing.public_base_url", "http://localhost:5000")
	viper.SetDefault("listing.cache_ttl", 30*time.Second)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("ratelimit.requests_per_second", 10)
	viper.SetDefault("ratelimit.burst", 20)
}

func LoadConfig() Config {
	setDefaults()
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("internal/configs")
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("[DEBUG] [PhotoLike-Service] Config file not found; using defaults or environment variables")
		} else {
			log.Fatalf("[DEBUG] [PhotoLike-Service] Error reading config file: %s", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalf("[DEBUG] [PhotoLike-Service] Unable to decode into struct, %v", err)
	}
	docker_flag := os.Getenv("DOCKER")
	if docker_flag == "TRUE" {
		LoadDockerConfig(&config)
		log.Println("[DEBUG] [PhotoLike-Service] Successful Load Config (docker)")
		return config
	}
	log.Println("[DEBUG] [PhotoLike-Service] Successful Load Config (localhost)")
	return config
}
func LoadDockerConfig(config *Config) {
	redis := os.Getenv("REDIS_HOST")
	kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	rabbit := os.Getenv("RABBITMQ_HOST")
	db := os.Getenv("DB_HOST")
	config.Redis.Host = redis
	config.Kafka.BootstrapServers = kafka
	config.RabbitMQ.Host = rabbit
	config.Database.Host = db
	if baseurl := os.Getenv("PUBLIC_BASE_URL"); baseurl != "" {
		config.Listing.PublicBaseURL = baseurl
	}
}
