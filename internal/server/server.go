// Package server exposes the floor-plan pipeline over HTTP.
//
// Routes:
//
//	POST /api/floor-plans    generate a plan, returns plan details and image URL
//	GET  /api/floor-plans    list recent plan records
//	POST /api/cleanup        remove artifacts and records past retention
//	GET  /plans/{filename}   serve a generated artifact
//	GET  /healthz            liveness probe
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/planstore"
)

// Server holds the handler dependencies.
type Server struct {
	Runner    *pipeline.Runner
	Store     planstore.Store
	Logger    *log.Logger
	OutputDir string

	// Retention is the maximum artifact age for cleanup sweeps.
	Retention time.Duration

	// ListLimit caps the records returned by the listing endpoint.
	ListLimit int

	// RenderDefaults seed the pipeline options for each request.
	BasePxPerMeter int
	MaxCanvasPx    int
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/floor-plans", s.handleGenerate)
	r.Get("/api/floor-plans", s.handleList)
	r.Post("/api/cleanup", s.handleCleanup)
	r.Get("/plans/{filename}", s.handleArtifact)

	return r
}

// ListenAndServe runs the HTTP server until it fails. The caller owns
// shutdown via the returned http.Server when graceful stop is needed.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Logger.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
