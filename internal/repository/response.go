package repository

import (
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
)

const (
	ToggleLike            = "Repository-ToggleLike"
	GetPhoto              = "Repository-GetPhoto"
	GetLikeRecord         = "Repository-GetLikeRecord"
	GetPhotos             = "Repository-GetPhotos"
	AddPhotos             = "Repository-AddPhotos"
	GetPhotosCache        = "Repository-GetPhotosCache"
	AddPhotosCache        = "Repository-AddPhotosCache"
	InvalidatePhotosCache = "Repository-InvalidatePhotosCache"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}

type Data struct {
	Photo      *model.Photo
	Page       *model.PhotoPage
	LikeRecord *model.LikeRecord
	LikeResult *model.LikeResult
	Inserted   int64
	Generation int64
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{Success: false, Errors: err, Place: place}
}
func SuccessResponse(data Data, place string, msg string) *RepositoryResponse {
	return &RepositoryResponse{Success: true, Data: data, Place: place, SuccessMessage: msg}
}
