package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
)

const (
	defaultLimit = 5
	taskTimeout  = 5 * time.Second
	// largest (page-1)*limit handed to a store
	maxOffset = math.MaxInt32
)

func (use *PhotoLikeServiceImplement) requestToRepository(response *repository.RepositoryResponse, traceid string) *ServiceResponse {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.ServerErrorType:
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			metrics.PhotoLikeErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoLikeServiceUnavalaible)}
		default:
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			metrics.PhotoLikeErrorsTotal.WithLabelValues(response.Errors.Type).Inc()
			return &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	use.Logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return nil
}
func (use *PhotoLikeServiceImplement) validateVar(value string, tag string, message string, place string, traceid string) *ServiceResponse {
	if err := use.Validate.Var(value, tag); err != nil {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("%s: %v", message, err))
		metrics.PhotoLikeErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ClientError(message)}
	}
	return nil
}
func (use *PhotoLikeServiceImplement) validatePhotoID(photoid string, place string, traceid string) *ServiceResponse {
	return use.validateVar(photoid, "required,max=255,excludes=/", erro.InvalidPhotoID, place, traceid)
}

// normalizePagination turns raw page and limit into positive values.
// Non-positive values fall back to page 1 and the default limit. Pages past
// maxOffset are pulled back to the last addressable page.
func (use *PhotoLikeServiceImplement) normalizePagination(page int, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	deflimit := use.Listing.DefaultLimit
	if deflimit <= 0 {
		deflimit = defaultLimit
	}
	if limit <= 0 {
		limit = deflimit
	}
	if use.Listing.MaxLimit > 0 && limit > use.Listing.MaxLimit {
		limit = use.Listing.MaxLimit
	}
	if lastpage := maxOffset/limit + 1; page > lastpage {
		page = lastpage
	}
	return page, limit
}
func (use *PhotoLikeServiceImplement) photoURL(filename string) string {
	return strings.TrimRight(use.Listing.PublicBaseURL, "/") + "/uploads/" + filename
}
func (use *PhotoLikeServiceImplement) enqueueTask(ctx context.Context, task func(context.Context), timeout time.Duration, place string, traceid string) *ServiceResponse {
	select {
	case use.Task_queue <- func() {
		taskCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task(taskCtx)
	}:
		metrics.PhotoLikeTaskQueueSize.Set(float64(len(use.Task_queue)))
		return &ServiceResponse{Success: true}
	case <-ctx.Done():
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, erro.ContextCanceled)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoLikeServiceUnavalaible)}
	default:
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoLikeServiceUnavalaible)}
	}
}
func (use *PhotoLikeServiceImplement) invalidateListCache(ctx context.Context, traceid string) {
	const place = InvalidateListCache
	if use.Cache == nil {
		return
	}
	// Runs before the caller gets its answer, so its next listing reads the
	// new generation. The write is already committed; a gone client does not
	// cancel it.
	cachectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), taskTimeout)
	defer cancel()
	response := use.Cache.InvalidatePhotosCache(cachectx)
	if response.Errors != nil {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, response.Errors.Message)
		return
	}
	use.Logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
}
func (use *PhotoLikeServiceImplement) publishLikeEvent(ctx context.Context, event *model.LikeEvent, traceid string) {
	const place = PublishLikeEvent
	if use.Eventpublisher == nil {
		return
	}
	routingkey := model.PhotoUnlikedKey
	if event.UserLikes {
		routingkey = model.PhotoLikedKey
	}
	use.enqueueTask(ctx, func(taskCtx context.Context) {
		err := use.Eventpublisher.NewLikeEvent(taskCtx, routingkey, event, place, traceid)
		if err != nil {
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to publish %s event: %v", routingkey, err))
		}
	}, taskTimeout, place, traceid)
}
