package server

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vastuplan/vastuplan/pkg/errors"
	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/plan"
	"github.com/vastuplan/vastuplan/pkg/planstore"
	"github.com/vastuplan/vastuplan/pkg/render/sink"
)

// generateRequest mirrors the public JSON contract for plan creation.
type generateRequest struct {
	PlotDirection string  `json:"plot_direction"`
	PlotWidth     float64 `json:"plot_width"`
	PlotLength    float64 `json:"plot_length"`
	PlotShape     string  `json:"plot_shape"`
	MainDoor      string  `json:"main_door_position"`
	Format        string  `json:"format"`
}

type planDetails struct {
	PlotWidth          float64               `json:"plot_width"`
	PlotLength         float64               `json:"plot_length"`
	Direction          string                `json:"direction"`
	Shape              string                `json:"shape"`
	MainDoor           string                `json:"main_door"`
	RoomPlacements     []plan.RoomDescriptor `json:"room_placements"`
	ValidationMessages []string              `json:"validation_messages"`
	Remedies           plan.RemedyMap        `json:"remedies"`
	PlanImageURL       string                `json:"plan_image_url"`
}

type generateResponse struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	PlanID      string      `json:"plan_id"`
	PlanDetails planDetails `json:"plan_details"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	result, err := s.Runner.Execute(r.Context(), pipeline.Options{
		Direction:      req.PlotDirection,
		Width:          req.PlotWidth,
		Length:         req.PlotLength,
		Shape:          req.PlotShape,
		MainDoor:       req.MainDoor,
		Format:         req.Format,
		OutputDir:      s.OutputDir,
		BasePxPerMeter: s.BasePxPerMeter,
		MaxCanvasPx:    s.MaxCanvasPx,
		Logger:         s.Logger,
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	rec := planstore.NewRecord(result.Spec, result.Filename, strings.TrimPrefix(filepath.Ext(result.Filename), "."))
	if err := s.Store.Put(r.Context(), rec); err != nil {
		s.Logger.Error("recording plan", "error", err, "file", result.Filename)
	}

	messages := result.Report.Messages
	if messages == nil {
		messages = []string{}
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		Status:  "success",
		Message: "Floor plan generated successfully",
		PlanID:  rec.ID,
		PlanDetails: planDetails{
			PlotWidth:          result.Spec.WidthM,
			PlotLength:         result.Spec.LengthM,
			Direction:          string(result.Spec.Direction),
			Shape:              string(result.Spec.Shape),
			MainDoor:           string(result.Spec.MainDoor),
			RoomPlacements:     result.Rooms,
			ValidationMessages: messages,
			Remedies:           result.Remedies,
			PlanImageURL:       "/plans/" + result.Filename,
		},
	})
}

type listResponse struct {
	Status string             `json:"status"`
	Plans  []planstore.Record `json:"plans"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.Store.List(r.Context(), s.ListLimit)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	if recs == nil {
		recs = []planstore.Record{}
	}
	s.writeJSON(w, http.StatusOK, listResponse{Status: "success", Plans: recs})
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := errors.ValidateArtifactFilename(filename); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.UserMessage(err))
		return
	}
	http.ServeFile(w, r, filepath.Join(s.OutputDir, filename))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Vastu floor plan service is running",
	})
}

type cleanupResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	ArtifactsRemoved int    `json:"artifacts_removed"`
	RecordsRemoved   int    `json:"records_removed"`
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	cutoff := time.Now().Add(-s.Retention)

	removed, err := sink.Sweep(s.OutputDir, cutoff)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	pruned, err := s.Store.Prune(r.Context(), cutoff)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	s.Logger.Info("cleanup", "artifacts", removed, "records", len(pruned))
	s.writeJSON(w, http.StatusOK, cleanupResponse{
		Status:           "success",
		Message:          "Removed old floor plan files",
		ArtifactsRemoved: removed,
		RecordsRemoved:   len(pruned),
	})
}
