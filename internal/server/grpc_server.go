package server

import (
	"context"
	"log"
	"net"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/handlers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GrpcServer struct {
	server *grpc.Server
	health *health.Server
	port   string
}

func NewGrpcServer(config configs.ServerConfig, service handlers.PhotoLikeServiceServer) *GrpcServer {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(config.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(config.MaxSendMsgSize),
	}
	s := &GrpcServer{
		server: grpc.NewServer(opts...),
		health: health.NewServer(),
		port:   config.GrpcPort,
	}
	handlers.RegisterPhotoLikeServiceServer(s.server, service)
	healthpb.RegisterHealthServer(s.server, s.health)
	s.health.SetServingStatus(handlers.PhotoLikeServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}
func (s *GrpcServer) Run() error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Error create connection on port %s: %v", s.port, err)
		return err
	}
	return s.Serve(lis)
}
func (s *GrpcServer) Serve(lis net.Listener) error {
	log.Printf("[DEBUG] [PhotoLike-Service] Starting gRPC-server on %s", lis.Addr())
	return s.server.Serve(lis)
}
func (s *GrpcServer) Shutdown(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		log.Println("[DEBUG] [PhotoLike-Service] gRPC-server gracefully stopped")
		return nil
	case <-ctx.Done():
		log.Println("[DEBUG] [PhotoLike-Service] Graceful shutdown timed out, forcefully stopping the gRPC-server")
		s.server.Stop()
		return ctx.Err()
	}
}
