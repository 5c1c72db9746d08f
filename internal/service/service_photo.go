package service

import (
	"context"
	"fmt"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
)

func (use *PhotoLikeServiceImplement) ListPhotos(ctx context.Context, order string, page int, limit int, traceid string) *ServiceResponse {
	const place = UseCase_ListPhotos
	if order != model.OrderPopular && order != model.OrderRecent {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("%s: %s", erro.InvalidOrder, order))
		metrics.PhotoLikeErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.InvalidOrder)}
	}
	page, limit = use.normalizePagination(page, limit)
	cacheable := false
	var generation int64
	if use.Cache != nil {
		cacheresponse := use.Cache.GetPhotosCache(ctx, order, page, limit)
		if cacheresponse.Success {
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, cacheresponse.Place, traceid, cacheresponse.SuccessMessage)
			return &ServiceResponse{Success: true, Data: Data{Page: use.withURLs(cacheresponse.Data.Page)}}
		}
		if cacheresponse.Errors != nil {
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
		} else {
			// unknown generation after an error, so only a clean miss is stored back
			cacheable = true
			generation = cacheresponse.Data.Generation
		}
	}
	bdresponse := use.Photorepo.GetPhotos(ctx, order, limit, (page-1)*limit)
	if resp := use.requestToRepository(bdresponse, traceid); resp != nil {
		return resp
	}
	photopage := bdresponse.Data.Page
	if cacheable {
		cacheresponse := use.Cache.AddPhotosCache(ctx, generation, order, page, limit, photopage)
		if cacheresponse.Errors != nil {
			use.Logproducer.NewPhotoLikeLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
		}
	}
	return &ServiceResponse{Success: true, Data: Data{Page: use.withURLs(photopage)}}
}
func (use *PhotoLikeServiceImplement) withURLs(photopage *model.PhotoPage) *model.PhotoPage {
	photos := make([]*model.Photo, 0, len(photopage.Photos))
	for _, p := range photopage.Photos {
		photo := *p
		photo.URL = use.photoURL(photo.FileName)
		photos = append(photos, &photo)
	}
	return &model.PhotoPage{Photos: photos, Total: photopage.Total}
}

// AddPhotos registers stored files announced by the upload service.
func (use *PhotoLikeServiceImplement) AddPhotos(ctx context.Context, newphotos *model.NewPhotos, traceid string) *ServiceResponse {
	const place = UseCase_AddPhotos
	if len(newphotos.FileNames) == 0 {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, erro.EmptyFileNames)
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.EmptyFileNames)}
	}
	if len(newphotos.FileNames) != len(newphotos.OriginalNames) {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("%s: %d != %d", erro.MismatchedFileNames, len(newphotos.FileNames), len(newphotos.OriginalNames)))
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.MismatchedFileNames)}
	}
	if err := use.Validate.Struct(newphotos); err != nil {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("%s: %v", erro.InvalidPhotoID, err))
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.InvalidPhotoID)}
	}
	photos := make([]*model.Photo, 0, len(newphotos.FileNames))
	for i, filename := range newphotos.FileNames {
		photos = append(photos, &model.Photo{FileName: filename, OriginalName: newphotos.OriginalNames[i]})
	}
	bdresponse := use.Photorepo.AddPhotos(ctx, photos)
	if resp := use.requestToRepository(bdresponse, traceid); resp != nil {
		return resp
	}
	if bdresponse.Data.Inserted > 0 {
		use.invalidateListCache(ctx, traceid)
	}
	return &ServiceResponse{Success: true, Data: Data{Inserted: bdresponse.Data.Inserted}}
}
