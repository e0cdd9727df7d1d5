package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(apiHandler *APIHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", apiHandler.HandleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/ws", apiHandler.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", apiHandler.HandleStatus)
		r.Get("/catalog", apiHandler.HandleCatalog)
		r.Get("/readings/latest", apiHandler.HandleLatest)
		r.Get("/readings/history", apiHandler.HandleHistory)
	})

	return r
}
