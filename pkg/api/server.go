// Package api serves stored CD items over HTTP: upload and download of raw
// record streams plus decoded views (records, tables, text, resources).
//
// Every route under /api/v1 requires the X-API-Key header. /metrics is
// unprotected for scraping.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter returns the HTTP handler serving s. Metrics are exposed from
// gatherer.
func NewRouter(s *Server, gatherer prometheus.Gatherer) http.Handler {
	metrics := s.metrics

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Item-Kind", "X-Item-Name"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Items
		r.Post("/items", metrics.InstrumentHandler("POST", "/api/v1/items", s.handlePutItem))
		r.Get("/items", metrics.InstrumentHandler("GET", "/api/v1/items", s.handleListItems))
		r.Get("/items/{id}", metrics.InstrumentHandler("GET", "/api/v1/items/{id}", s.handleGetItem))
		r.Delete("/items/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/items/{id}", s.handleDeleteItem))

		// Decoded views
		r.Get("/items/{id}/records", metrics.InstrumentHandler("GET", "/api/v1/items/{id}/records", s.handleRecords))
		r.Get("/items/{id}/tables", metrics.InstrumentHandler("GET", "/api/v1/items/{id}/tables", s.handleTables))
		r.Get("/items/{id}/text", metrics.InstrumentHandler("GET", "/api/v1/items/{id}/text", s.handleText))
		r.Get("/items/{id}/resources", metrics.InstrumentHandler("GET", "/api/v1/items/{id}/resources", s.handleResources))
		r.Get("/items/{id}/summary", metrics.InstrumentHandler("GET", "/api/v1/items/{id}/summary", s.handleSummary))
	})

	return r
}

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, store ItemStore, config ServerConfig, log logrus.FieldLogger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := NewServer(store, config, NewMetrics(reg), log)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("starting cdtool API server")
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
