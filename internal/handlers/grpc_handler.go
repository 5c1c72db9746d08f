package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const API_ListPhotos = "API-ListPhotos"

type PhotoLikeAPI struct {
	photoService  PhotoLikeService
	kafkaProducer LogProducer
}

func NewPhotoLikeAPI(service PhotoLikeService, kafka LogProducer) *PhotoLikeAPI {
	return &PhotoLikeAPI{
		kafkaProducer: kafka,
		photoService:  service,
	}
}
func (s *PhotoLikeAPI) ToggleLike(ctx context.Context, req *ToggleLikeRequest) (*ToggleLikeResponse, error) {
	const place = API_ToggleLike
	traceID := s.getTraceIdFromMetadata(ctx, place)
	defer s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "Succesfull send response to client")
	s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	ctx = context.WithValue(ctx, "traceID", traceID)
	serviceresp := s.photoService.ToggleLike(ctx, req.PhotoId, req.UserId, req.Heart, traceID)
	if serviceresp.Errors == nil {
		return &ToggleLikeResponse{
			Status:     true,
			PhotoLikes: serviceresp.Data.LikeResult.PhotoLikes,
			UserLikes:  serviceresp.Data.LikeResult.UserLikes,
		}, nil
	}
	return nil, grpcError(serviceresp)
}
func (s *PhotoLikeAPI) GetPhoto(ctx context.Context, req *GetPhotoRequest) (*GetPhotoResponse, error) {
	const place = API_GetPhoto
	traceID := s.getTraceIdFromMetadata(ctx, place)
	defer s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "Succesfull send response to client")
	s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	ctx = context.WithValue(ctx, "traceID", traceID)
	serviceresp := s.photoService.GetPhoto(ctx, req.PhotoId, req.UserId, traceID)
	if serviceresp.Errors == nil {
		return &GetPhotoResponse{Status: true, Photo: serviceresp.Data.Photo}, nil
	}
	return nil, grpcError(serviceresp)
}
func (s *PhotoLikeAPI) ListPhotos(ctx context.Context, req *ListPhotosRequest) (*ListPhotosResponse, error) {
	const place = API_ListPhotos
	traceID := s.getTraceIdFromMetadata(ctx, place)
	defer s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "Succesfull send response to client")
	s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	ctx = context.WithValue(ctx, "traceID", traceID)
	serviceresp := s.photoService.ListPhotos(ctx, req.Order, req.Page, req.Limit, traceID)
	if serviceresp.Errors == nil {
		return &ListPhotosResponse{Status: true, Photos: serviceresp.Data.Page.Photos, Total: serviceresp.Data.Page.Total}, nil
	}
	return nil, grpcError(serviceresp)
}
func grpcError(serviceresp *service.ServiceResponse) error {
	switch serviceresp.Errors.Type {
	case erro.ClientErrorType:
		return status.Error(codes.InvalidArgument, serviceresp.Errors.Message)
	case erro.NotFoundErrorType:
		return status.Error(codes.NotFound, serviceresp.Errors.Message)
	default:
		return status.Error(codes.Internal, erro.PhotoLikeServiceUnavalaible)
	}
}
func (s *PhotoLikeAPI) getTraceIdFromMetadata(ctx context.Context, place string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, "", "Metadata not found in context")
		return uuid.New().String()
	}
	traceIDs := md.Get("traceID")
	if len(traceIDs) == 0 || traceIDs[0] == "" {
		s.kafkaProducer.NewPhotoLikeLog(kafka.LogLevelWarn, place, "", "Trace ID not found in context")
		return uuid.New().String()
	}
	return traceIDs[0]
}
