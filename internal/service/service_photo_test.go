package service_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestListPhotos_CacheHit(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	mocks.cache.EXPECT().GetPhotosCache(ctx, model.OrderPopular, 1, 5).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful get photos page from cache",
		Place:          repository.GetPhotosCache,
		Data: repository.Data{Page: &model.PhotoPage{
			Photos: []*model.Photo{{FileName: "a.jpg", PhotoLikes: 9}},
			Total:  1,
		}},
	})
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, repository.GetPhotosCache, fixedTraceID, gomock.Any())
	response := as.ListPhotos(ctx, model.OrderPopular, 0, 0, fixedTraceID)
	require.True(t, response.Success)
	require.Len(t, response.Data.Page.Photos, 1)
	require.Equal(t, "http://localhost:5000/uploads/a.jpg", response.Data.Page.Photos[0].URL)
	require.Equal(t, int64(1), response.Data.Page.Total)
}
func TestListPhotos_CacheMiss(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	page := &model.PhotoPage{
		Photos: []*model.Photo{{FileName: "f.jpg"}, {FileName: "g.jpg"}},
		Total:  12,
	}
	mocks.cache.EXPECT().GetPhotosCache(ctx, model.OrderRecent, 2, 5).Return(&repository.RepositoryResponse{
		Success:        false,
		SuccessMessage: "Photos page was not found in the cache",
		Place:          repository.GetPhotosCache,
		Data:           repository.Data{Generation: 6},
	})
	mocks.photorepo.EXPECT().GetPhotos(ctx, model.OrderRecent, 5, 5).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.GetPhotos,
		Data:    repository.Data{Page: page},
	})
	mocks.cache.EXPECT().AddPhotosCache(ctx, int64(6), model.OrderRecent, 2, 5, page).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.AddPhotosCache,
	})
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.ListPhotos(ctx, model.OrderRecent, 2, 5, fixedTraceID)
	require.True(t, response.Success)
	require.Equal(t, int64(12), response.Data.Page.Total)
	require.Equal(t, "http://localhost:5000/uploads/g.jpg", response.Data.Page.Photos[1].URL)
	require.Empty(t, page.Photos[0].URL)
}
func TestListPhotos_CacheErrorFallsBackToDatabase(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	page := &model.PhotoPage{Photos: []*model.Photo{}, Total: 0}
	mocks.cache.EXPECT().GetPhotosCache(ctx, model.OrderPopular, 1, 100).Return(&repository.RepositoryResponse{
		Success: false,
		Place:   repository.GetPhotosCache,
		Errors:  erro.ServerError("Get photos-cache error: i/o timeout"),
	})
	mocks.photorepo.EXPECT().GetPhotos(ctx, model.OrderPopular, 100, 0).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.GetPhotos,
		Data:    repository.Data{Page: page},
	})
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelError, repository.GetPhotosCache, fixedTraceID, gomock.Any()).Times(1)
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.ListPhotos(ctx, model.OrderPopular, -3, 5000, fixedTraceID)
	require.True(t, response.Success)
	require.Empty(t, response.Data.Page.Photos)
}
func TestListPhotos_CacheSetErrorIsLogged(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	page := &model.PhotoPage{Photos: []*model.Photo{{FileName: "a.jpg"}}, Total: 1}
	mocks.cache.EXPECT().GetPhotosCache(ctx, model.OrderPopular, 1, 5).Return(&repository.RepositoryResponse{
		Success: false,
		Place:   repository.GetPhotosCache,
		Data:    repository.Data{Generation: 2},
	})
	mocks.photorepo.EXPECT().GetPhotos(ctx, model.OrderPopular, 5, 0).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.GetPhotos,
		Data:    repository.Data{Page: page},
	})
	mocks.cache.EXPECT().AddPhotosCache(ctx, int64(2), model.OrderPopular, 1, 5, page).Return(&repository.RepositoryResponse{
		Success: false,
		Place:   repository.AddPhotosCache,
		Errors:  erro.ServerError("Set photos-cache error: i/o timeout"),
	})
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelError, repository.AddPhotosCache, fixedTraceID, gomock.Any()).Times(1)
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.ListPhotos(ctx, model.OrderPopular, 1, 5, fixedTraceID)
	require.True(t, response.Success)
	require.Len(t, response.Data.Page.Photos, 1)
}
func TestListPhotos_InvalidOrder(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelWarn, service.UseCase_ListPhotos, fixedTraceID, gomock.Any())
	response := as.ListPhotos(ctx, "random", 1, 5, fixedTraceID)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientErrorType, response.Errors.Type)
}
func TestAddPhotos_Success(t *testing.T) {
	ctx, cancel := newTestContext()
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	as, mocks := newTestService(ctrl, 10)
	mocks.photorepo.EXPECT().AddPhotos(ctx, []*model.Photo{
		{FileName: "1.jpg", OriginalName: "cat.jpg"},
		{FileName: "2.jpg", OriginalName: "dog.jpg"},
	}).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.AddPhotos,
		Data:    repository.Data{Inserted: 2},
	})
	mocks.cache.EXPECT().InvalidatePhotosCache(gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   repository.InvalidatePhotosCache,
		Data:    repository.Data{Generation: 1},
	})
	mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.AddPhotos(ctx, &model.NewPhotos{
		FileNames:     []string{"1.jpg", "2.jpg"},
		OriginalNames: []string{"cat.jpg", "dog.jpg"},
	}, fixedTraceID)
	require.True(t, response.Success)
	require.Equal(t, int64(2), response.Data.Inserted)
	require.Equal(t, 0, runQueuedTasks(as))
}
func TestAddPhotos_ValidationErrors(t *testing.T) {
	tests := []struct {
		name            string
		newphotos       *model.NewPhotos
		expectedMessage string
	}{
		{
			name:            "Mismatched names",
			newphotos:       &model.NewPhotos{FileNames: []string{"1.jpg", "2.jpg"}, OriginalNames: []string{"cat.jpg"}},
			expectedMessage: erro.MismatchedFileNames,
		},
		{
			name:            "No files",
			newphotos:       &model.NewPhotos{},
			expectedMessage: erro.EmptyFileNames,
		},
		{
			name:            "Bad file name",
			newphotos:       &model.NewPhotos{FileNames: []string{"a/b.jpg"}, OriginalNames: []string{"b.jpg"}},
			expectedMessage: erro.InvalidPhotoID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := newTestContext()
			defer cancel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			as, mocks := newTestService(ctrl, 10)
			mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelWarn, service.UseCase_AddPhotos, fixedTraceID, gomock.Any())
			response := as.AddPhotos(ctx, tt.newphotos, fixedTraceID)
			require.False(t, response.Success)
			require.Equal(t, erro.ClientErrorType, response.Errors.Type)
			require.Equal(t, tt.expectedMessage, response.Errors.Message)
		})
	}
}
func TestListPhotos_PageMath(t *testing.T) {
	tests := []struct {
		page, limit            int
		expectedPage, expLimit int
		expectedOffset         int
	}{
		{page: 2, limit: 5, expectedPage: 2, expLimit: 5, expectedOffset: 5},
		{page: 0, limit: 0, expectedPage: 1, expLimit: 5, expectedOffset: 0},
		{page: 3, limit: 101, expectedPage: 3, expLimit: 100, expectedOffset: 200},
		{page: (1 << 62) + 1, limit: 3, expectedPage: math.MaxInt32/3 + 1, expLimit: 3, expectedOffset: math.MaxInt32 / 3 * 3},
		{page: math.MaxInt, limit: 100, expectedPage: math.MaxInt32/100 + 1, expLimit: 100, expectedOffset: math.MaxInt32 / 100 * 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d,limit=%d", tt.page, tt.limit), func(t *testing.T) {
			ctx, cancel := newTestContext()
			defer cancel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			as, mocks := newTestService(ctrl, 10)
			as.Cache = nil
			mocks.photorepo.EXPECT().GetPhotos(ctx, model.OrderPopular, tt.expLimit, tt.expectedOffset).Return(&repository.RepositoryResponse{
				Success: true,
				Place:   repository.GetPhotos,
				Data:    repository.Data{Page: &model.PhotoPage{Photos: []*model.Photo{}, Total: 0}},
			})
			mocks.logproducer.EXPECT().NewPhotoLikeLog(kafka.LogLevelInfo, gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
			response := as.ListPhotos(ctx, model.OrderPopular, tt.page, tt.limit, fixedTraceID)
			require.True(t, response.Success)
		})
	}
}
