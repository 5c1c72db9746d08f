package service

import (
	"context"
	"fmt"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
)

// ToggleLike sets the caller's like state for a photo and applies +1 or -1 to
// the photo counter. The delta does not depend on the previous state, so
// sending the same state twice moves the counter twice.
func (use *PhotoLikeServiceImplement) ToggleLike(ctx context.Context, photoid string, userid string, heart *bool, traceid string) *ServiceResponse {
	const place = UseCase_ToggleLike
	if resp := use.validatePhotoID(photoid, place, traceid); resp != nil {
		return resp
	}
	if resp := use.validateVar(userid, "required,max=255", erro.MissingUserID, place, traceid); resp != nil {
		return resp
	}
	if heart == nil {
		use.Logproducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, traceid, erro.MissingHeart)
		metrics.PhotoLikeErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.MissingHeart)}
	}
	bdresponse := use.Photorepo.ToggleLike(ctx, photoid, userid, *heart)
	if resp := use.requestToRepository(bdresponse, traceid); resp != nil {
		return resp
	}
	result := bdresponse.Data.LikeResult
	direction := "unliked"
	if result.UserLikes {
		direction = "liked"
	}
	metrics.PhotoLikeTogglesTotal.WithLabelValues(direction).Inc()
	use.Logproducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("User %s %s photo %s, photo_likes = %d", userid, direction, photoid, result.PhotoLikes))
	use.invalidateListCache(ctx, traceid)
	use.publishLikeEvent(ctx, &model.LikeEvent{
		FileName:   photoid,
		UserID:     userid,
		PhotoLikes: result.PhotoLikes,
		UserLikes:  result.UserLikes,
		Traceid:    traceid,
	}, traceid)
	return &ServiceResponse{Success: true, Data: Data{LikeResult: result}}
}

// GetPhoto returns the photo with its URL. For an identified caller
// UserLikes is set, false when no like record exists; anonymous callers get
// it unset.
func (use *PhotoLikeServiceImplement) GetPhoto(ctx context.Context, photoid string, userid string, traceid string) *ServiceResponse {
	const place = UseCase_GetPhoto
	if resp := use.validatePhotoID(photoid, place, traceid); resp != nil {
		return resp
	}
	bdresponse := use.Photorepo.GetPhoto(ctx, photoid)
	if resp := use.requestToRepository(bdresponse, traceid); resp != nil {
		return resp
	}
	photo := bdresponse.Data.Photo
	photo.URL = use.photoURL(photo.FileName)
	if userid == "" {
		return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
	}
	likeresponse := use.Photorepo.GetLikeRecord(ctx, userid, photoid)
	if resp := use.requestToRepository(likeresponse, traceid); resp != nil {
		return resp
	}
	userlikes := false
	if likeresponse.Data.LikeRecord != nil {
		userlikes = likeresponse.Data.LikeRecord.UserLikes
	}
	photo.UserLikes = &userlikes
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}
