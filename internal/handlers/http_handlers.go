package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func (h *Handler) InitRoutes() http.Handler {
	m := mux.NewRouter()
	m.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	api := m.PathPrefix("/").Subrouter()
	api.Use(h.middleware.Logging, h.middleware.RateLimiter, h.middleware.Identity)
	api.HandleFunc("/photo/{id}/like", h.ToggleLike)
	api.HandleFunc("/photo/{id}", h.GetPhoto)
	api.HandleFunc("/popularPhotos", h.PopularPhotos)
	api.HandleFunc("/recentPhotos", h.RecentPhotos)
	c := cors.New(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-User-ID", "X-Trace-ID"},
		AllowCredentials: true,
	})
	return c.Handler(m)
}
