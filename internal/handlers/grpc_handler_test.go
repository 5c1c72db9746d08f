package handlers

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	mock_handlers "github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/mocks"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestGrpcClient(t *testing.T, ctrl *gomock.Controller) (*PhotoLikeServiceClient, *mock_handlers.MockPhotoLikeService) {
	services := mock_handlers.NewMockPhotoLikeService(ctrl)
	logproducer := mock_handlers.NewMockLogProducer(ctrl)
	logproducer.EXPECT().NewPhotoLikeLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterPhotoLikeServiceServer(server, NewPhotoLikeAPI(services, logproducer))
	go server.Serve(lis)
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		server.Stop()
	})
	return NewPhotoLikeServiceClient(conn), services
}
func newGrpcContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "traceID", testTraceID)
}

func TestGrpcToggleLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client, services := newTestGrpcClient(t, ctrl)
	services.EXPECT().ToggleLike(gomock.Any(), "abc.jpg", "u1", boolPtr(true), testTraceID).Return(&service.ServiceResponse{
		Success: true,
		Data:    service.Data{LikeResult: &model.LikeResult{PhotoLikes: 4, UserLikes: true}},
	})
	resp, err := client.ToggleLike(newGrpcContext(t), &ToggleLikeRequest{PhotoId: "abc.jpg", UserId: "u1", Heart: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, &ToggleLikeResponse{Status: true, PhotoLikes: 4, UserLikes: true}, resp)
}

func TestGrpcErrorCodes(t *testing.T) {
	tests := []struct {
		testname        string
		serviceErr      *erro.CustomError
		expectedCode    codes.Code
		expectedMessage string
	}{
		{testname: "Client", serviceErr: erro.ClientError(erro.MissingUserID), expectedCode: codes.InvalidArgument, expectedMessage: erro.MissingUserID},
		{testname: "NotFound", serviceErr: erro.NotFoundError(erro.PhotoNotFound), expectedCode: codes.NotFound, expectedMessage: erro.PhotoNotFound},
		{testname: "Server", serviceErr: erro.ServerError("connection refused"), expectedCode: codes.Internal, expectedMessage: erro.PhotoLikeServiceUnavalaible},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client, services := newTestGrpcClient(t, ctrl)
			services.EXPECT().GetPhoto(gomock.Any(), "abc.jpg", "", testTraceID).Return(&service.ServiceResponse{
				Success: false,
				Errors:  tt.serviceErr,
			})
			_, err := client.GetPhoto(newGrpcContext(t), &GetPhotoRequest{PhotoId: "abc.jpg"})
			st, ok := status.FromError(err)
			require.True(t, ok)
			require.Equal(t, tt.expectedCode, st.Code())
			require.Equal(t, tt.expectedMessage, st.Message())
		})
	}
}

func TestGrpcListPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client, services := newTestGrpcClient(t, ctrl)
	services.EXPECT().ListPhotos(gomock.Any(), model.OrderRecent, 2, 5, testTraceID).Return(&service.ServiceResponse{
		Success: true,
		Data: service.Data{Page: &model.PhotoPage{
			Photos: []*model.Photo{{FileName: "p01.jpg", URL: "http://localhost:5000/uploads/p01.jpg"}},
			Total:  6,
		}},
	})
	resp, err := client.ListPhotos(newGrpcContext(t), &ListPhotosRequest{Order: model.OrderRecent, Page: 2, Limit: 5})
	require.NoError(t, err)
	require.True(t, resp.Status)
	require.Equal(t, int64(6), resp.Total)
	require.Len(t, resp.Photos, 1)
	require.Equal(t, "http://localhost:5000/uploads/p01.jpg", resp.Photos[0].URL)
}

func TestGrpcMissingTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client, services := newTestGrpcClient(t, ctrl)
	services.EXPECT().GetPhoto(gomock.Any(), "abc.jpg", "u1", gomock.Not(gomock.Eq(""))).Return(&service.ServiceResponse{
		Success: true,
		Data:    service.Data{Photo: &model.Photo{FileName: "abc.jpg", UserLikes: boolPtr(true)}},
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.GetPhoto(ctx, &GetPhotoRequest{PhotoId: "abc.jpg", UserId: "u1"})
	require.NoError(t, err)
	require.True(t, *resp.Photo.UserLikes)
}
