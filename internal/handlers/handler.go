package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/middleware"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
)

type LogProducer interface {
	NewPhotoLikeLog(level, place, traceid, msg string)
}
type PhotoLikeService interface {
	ToggleLike(ctx context.Context, photoid string, userid string, heart *bool, traceid string) *service.ServiceResponse
	GetPhoto(ctx context.Context, photoid string, userid string, traceid string) *service.ServiceResponse
	ListPhotos(ctx context.Context, order string, page int, limit int, traceid string) *service.ServiceResponse
}

const API_ToggleLike = "API-ToggleLike"
const API_GetPhoto = "API-GetPhoto"
const API_PopularPhotos = "API-PopularPhotos"
const API_RecentPhotos = "API-RecentPhotos"

type Handler struct {
	services       PhotoLikeService
	logproducer    LogProducer
	middleware     *middleware.Middleware
	validate       *validator.Validate
	allowedOrigins []string
}

func NewHandler(services PhotoLikeService, logproducer LogProducer, middleware *middleware.Middleware, allowedOrigins []string) *Handler {
	return &Handler{
		services:       services,
		logproducer:    logproducer,
		middleware:     middleware,
		validate:       validator.New(),
		allowedOrigins: allowedOrigins,
	}
}
