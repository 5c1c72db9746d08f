package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers"
	mock_handlers "github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers/mocks"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestGrpcServer_HealthAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logproducer := mock_handlers.NewMockLogProducer(ctrl)
	services := mock_handlers.NewMockPhotoLikeService(ctrl)
	srv := NewGrpcServer(configs.ServerConfig{MaxRecvMsgSize: 1 << 20, MaxSendMsgSize: 1 << 20}, handlers.NewPhotoLikeAPI(services, logproducer))
	lis := bufconn.Listen(1 << 20)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: handlers.PhotoLikeServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	require.NoError(t, srv.Shutdown(ctx))
	require.NoError(t, <-serveErr)
}
