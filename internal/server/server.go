package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(config configs.ServerConfig, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + config.Port,
			Handler:        handler,
			MaxHeaderBytes: config.MaxHeaderBytes,
			ReadTimeout:    config.ReadTimeout,
			WriteTimeout:   config.WriteTimeout,
		},
	}
}
func (s *Server) Run() error {
	log.Printf("[DEBUG] [PhotoLike-Service] Starting HTTP-server on port: %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
