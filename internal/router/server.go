package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wellywell/shopsync/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(address string, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Get("/api/sync/status", h.HandleStatus)
	r.Post("/api/sync/run", h.HandleRunSync)
	r.Post("/api/sync/status-monitoring/run", h.HandleRunStatusMonitoring)

	r.Post("/api/orders/download/serial-numbers", h.HandleDownloadBySerialNumbers)
	r.Post("/api/orders/download/date-range", h.HandleDownloadByDateRange)
	r.Post("/api/orders/download/all", h.HandleDownloadAll)
	r.Get("/api/orders", h.HandleGetOrders)

	r.Handle("/metrics", promhttp.Handler())

	return &Router{router: r, address: address}
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}
