package service

import (
	"context"
	"log"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
)

type DBPhotoRepos interface {
	ToggleLike(ctx context.Context, photoid string, userid string, heart bool) *repository.RepositoryResponse
	GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	GetLikeRecord(ctx context.Context, userid string, photoid string) *repository.RepositoryResponse
	GetPhotos(ctx context.Context, order string, limit int, offset int) *repository.RepositoryResponse
	AddPhotos(ctx context.Context, photos []*model.Photo) *repository.RepositoryResponse
}
type CachePhotoRepos interface {
	AddPhotosCache(ctx context.Context, generation int64, order string, page int, limit int, photopage *model.PhotoPage) *repository.RepositoryResponse
	GetPhotosCache(ctx context.Context, order string, page int, limit int) *repository.RepositoryResponse
	InvalidatePhotosCache(ctx context.Context) *repository.RepositoryResponse
}
type EventPublisher interface {
	NewLikeEvent(ctx context.Context, routingKey string, event *model.LikeEvent, place string, traceid string) error
}
type LogProducer interface {
	NewPhotoLikeLog(level, place, traceid, msg string)
}

const (
	UseCase_ToggleLike  = "UseCase-ToggleLike"
	UseCase_GetPhoto    = "UseCase-GetPhoto"
	UseCase_ListPhotos  = "UseCase-ListPhotos"
	UseCase_AddPhotos   = "UseCase-AddPhotos"
	PublishLikeEvent    = "PublishLikeEvent"
	InvalidateListCache = "InvalidateListCache"
)

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}
type Data struct {
	LikeResult *model.LikeResult
	Photo      *model.Photo
	Page       *model.PhotoPage
	Inserted   int64
}

// PhotoLikeServiceImplement owns the like ledger use cases. Cache and
// Eventpublisher are optional and may be nil.
type PhotoLikeServiceImplement struct {
	Photorepo      DBPhotoRepos
	Cache          CachePhotoRepos
	Eventpublisher EventPublisher
	Logproducer    LogProducer
	Validate       *validator.Validate
	Listing        configs.ListingConfig
	Task_queue     chan func()
	wg             *sync.WaitGroup
	closechan      chan struct{}
	stopOnce       sync.Once
}

func NewPhotoLikeService(photorepo DBPhotoRepos, cache CachePhotoRepos, publisher EventPublisher, logproducer LogProducer, cfg configs.Config) *PhotoLikeServiceImplement {
	queuesize := cfg.Server.TaskQueueSize
	if queuesize <= 0 {
		queuesize = 1000
	}
	workers := cfg.Server.Workers
	if workers <= 0 {
		workers = 5
	}
	service := &PhotoLikeServiceImplement{
		Photorepo:      photorepo,
		Cache:          cache,
		Eventpublisher: publisher,
		Logproducer:    logproducer,
		Validate:       validator.New(),
		Listing:        cfg.Listing,
		Task_queue:     make(chan func(), queuesize),
		wg:             &sync.WaitGroup{},
		closechan:      make(chan struct{}),
	}
	for i := 1; i <= workers; i++ {
		service.wg.Add(1)
		go service.taskWorker(i)
	}
	metrics.PhotoLikeTaskQueueSize.Set(0)
	log.Printf("[DEBUG] [PhotoLike-Service] Successful start %d task-workers", workers)
	return service
}
