package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/rabbitmq"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/middleware"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository/cache"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository/database"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository/memory"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/server"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type PhotoLikeApplication struct {
	config     configs.Config
	server     *server.Server
	grpcserver *server.GrpcServer
}

func NewPhotoLikeApplication(config configs.Config) *PhotoLikeApplication {
	return &PhotoLikeApplication{config: config}
}

func (a *PhotoLikeApplication) Start() error {
	defer func() {
		buf := make([]byte, 1<<20)
		n := runtime.Stack(buf, true)
		log.Printf("[DEBUG] [PhotoLike-Service] Count of active goroutines: %v", runtime.NumGoroutine())
		log.Printf("[DEBUG] [PhotoLike-Service] Active goroutines:\n%s", buf[:n])
	}()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	metrics.Start()
	defer metrics.Stop()
	var photorepo service.DBPhotoRepos
	switch a.config.Database.Backend {
	case BackendPostgres:
		pg, err := database.NewPostgresConnection(a.config.Database)
		if err != nil {
			return err
		}
		defer pg.Close()
		photorepo = database.NewPhotoDatabase(pg, a.config.Ledger.ClampAtZero)
	case BackendMemory:
		log.Println("[DEBUG] [PhotoLike-Service] Using in-memory photo store")
		photorepo = memory.NewPhotoStore(a.config.Ledger.ClampAtZero)
	default:
		return fmt.Errorf("unknown database backend %q", a.config.Database.Backend)
	}
	var photocache service.CachePhotoRepos
	if a.config.Redis.Enabled {
		redis, err := cache.NewRedisConnection(a.config.Redis)
		if err != nil {
			return err
		}
		defer redis.Close()
		photocache = cache.NewPhotoCache(redis, a.config.Listing.CacheTTL)
	}
	var publisher service.EventPublisher
	if a.config.RabbitMQ.Enabled {
		rabbitProducer, err := rabbitmq.NewRabbitProducer(a.config.RabbitMQ, kafkaProducer)
		if err != nil {
			return err
		}
		defer rabbitProducer.Close()
		publisher = rabbitProducer
	}
	photoService := service.NewPhotoLikeService(photorepo, photocache, publisher, kafkaProducer, a.config)
	defer photoService.StopWorkers()
	if a.config.RabbitMQ.Enabled {
		rabbitConsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, kafkaProducer, photoService)
		if err != nil {
			return err
		}
		defer rabbitConsumer.Close()
	}
	m := middleware.NewMiddleware(kafkaProducer, a.config.RateLimit, a.config.Server.RequestTimeout)
	defer m.Stop()
	handler := handlers.NewHandler(photoService, kafkaProducer, m, a.config.Cors.AllowedOrigins)
	a.server = server.NewServer(a.config.Server, handler.InitRoutes())
	a.grpcserver = server.NewGrpcServer(a.config.Server, handlers.NewPhotoLikeAPI(photoService, kafkaProducer))
	kafkaProducer.LogStart()
	serverError := make(chan error, 2)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- err
		}
	}()
	go func() {
		if err := a.grpcserver.Run(); err != nil {
			serverError <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Printf("[DEBUG] [PhotoLike-Service] Server shutting down with signal: %v", sig)
	case err := <-serverError:
		log.Printf("[DEBUG] [PhotoLike-Service] Server startup failed: %v", err)
		a.Stop()
		return err
	}
	return a.Stop()
}
func (a *PhotoLikeApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	log.Println("[DEBUG] [PhotoLike-Service] Server is shutting down...")
	httpErr := a.server.Shutdown(ctx)
	grpcErr := a.grpcserver.Shutdown(ctx)
	if err := errors.Join(httpErr, grpcErr); err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Server shutdown error: %v", err)
		return err
	}
	log.Println("[DEBUG] [PhotoLike-Service] Server has shutted down successfully")
	return nil
}
