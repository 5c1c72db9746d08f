package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type PhotoCache struct {
	cacheclient *CacheObject
	ttl         time.Duration
}

func NewPhotoCache(red *CacheObject, ttl time.Duration) *PhotoCache {
	return &PhotoCache{cacheclient: red, ttl: ttl}
}

// KeyPhotos addresses one listing page: generation, order, page, limit.
// Bumping KeyPhotosGeneration orphans every page written under the old value;
// orphans expire with the ttl.
const KeyPhotos = "photos:%d:%s:%d:%d"
const KeyPhotosGeneration = "photos-generation"

func CacheMetrics(place string, start time.Time) {
	metrics.PhotoLikeCacheQueriesTotal.WithLabelValues(place).Inc()
	duration := time.Since(start).Seconds()
	metrics.PhotoLikeCacheQueryDuration.WithLabelValues(place).Observe(duration)
}

func (ph *PhotoCache) AddPhotosCache(ctx context.Context, generation int64, order string, page int, limit int, photopage *model.PhotoPage) *repository.RepositoryResponse {
	const place = repository.AddPhotosCache
	start := time.Now()
	defer CacheMetrics(place, start)
	jsondata, err := json.Marshal(photopage)
	if err != nil {
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("SET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	err = ph.cacheclient.connect.Set(ctx, fmt.Sprintf(KeyPhotos, generation, order, page, limit), jsondata, ph.ttl).Err()
	if err != nil {
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("SET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful add photos page in cache", Place: place}
}

// GetPhotosCache reports a miss as Success false without Errors. Data.Generation
// is filled on hits and misses; a page read from the database must be stored
// under that generation.
func (ph *PhotoCache) GetPhotosCache(ctx context.Context, order string, page int, limit int) *repository.RepositoryResponse {
	const place = repository.GetPhotosCache
	start := time.Now()
	defer CacheMetrics(place, start)
	generation, err := ph.cacheclient.connect.Get(ctx, KeyPhotosGeneration).Int64()
	if err != nil && err != redis.Nil {
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetPhotos, err)), place)
	}
	result, err := ph.cacheclient.connect.Get(ctx, fmt.Sprintf(KeyPhotos, generation, order, page, limit)).Result()
	if err != nil {
		if err == redis.Nil {
			return &repository.RepositoryResponse{Success: false, Data: repository.Data{Generation: generation}, SuccessMessage: "Photos page was not found in the cache", Place: place}
		}
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetPhotos, err)), place)
	}
	var photopage model.PhotoPage
	err = json.Unmarshal([]byte(result), &photopage)
	if err != nil {
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("GET").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	if photopage.Photos == nil {
		photopage.Photos = []*model.Photo{}
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Page: &photopage, Generation: generation}, SuccessMessage: "Successful get photos page from cache", Place: place}
}

// InvalidatePhotosCache retires every cached listing page at once. Any like
// toggle or new photo can move rows between pages.
func (ph *PhotoCache) InvalidatePhotosCache(ctx context.Context) *repository.RepositoryResponse {
	const place = repository.InvalidatePhotosCache
	start := time.Now()
	defer CacheMetrics(place, start)
	generation, err := ph.cacheclient.connect.Incr(ctx, KeyPhotosGeneration).Result()
	if err != nil {
		metrics.PhotoLikeCacheErrorsTotal.WithLabelValues("INCR").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorIncrGeneration, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Generation: generation}, SuccessMessage: fmt.Sprintf("Successful move photos cache to generation %d", generation), Place: place}
}
