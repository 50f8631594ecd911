// Package pipeline provides the core floor-plan pipeline for Vastuplan.
//
// This package implements the complete validate → layout → render
// pipeline used by both the CLI and the HTTP server. Centralizing the
// flow here keeps behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: Check the plot spec against plot rules
//  2. Layout: Compute room descriptors and Vastu remedies
//  3. Render: Draw the annotated plan and write the artifact
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Direction: "north",
//	    Width:     12,
//	    Length:    15,
//	    OutputDir: "generated_plans",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Filename)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vastuplan/vastuplan/pkg/errors"
	"github.com/vastuplan/vastuplan/pkg/plan"
	"github.com/vastuplan/vastuplan/pkg/render/sink"
)

// Default values shared by the CLI and the API.
const (
	// DefaultFormat is the artifact format when none is requested.
	DefaultFormat = "png"

	// DefaultOutputDir is where artifacts land when no directory is
	// configured.
	DefaultOutputDir = "generated_plans"

	// DefaultShape is assumed when the request omits the plot shape.
	DefaultShape = "rectangular"
)

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Plot options
	Direction string  `json:"plot_direction"`
	Width     float64 `json:"plot_width"`
	Length    float64 `json:"plot_length"`
	Shape     string  `json:"plot_shape,omitempty"`
	MainDoor  string  `json:"main_door_direction,omitempty"`

	// Render options
	Format         string `json:"format,omitempty"`
	OutputDir      string `json:"output_dir,omitempty"`
	BasePxPerMeter int    `json:"base_px_per_meter,omitempty"`
	MaxCanvasPx    int    `json:"max_canvas_px,omitempty"`

	// SkipRender computes layout and remedies without drawing.
	SkipRender bool `json:"skip_render,omitempty"`

	// Refresh bypasses the render cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the validated plot specification.
	Spec plan.PlotSpec

	// Rooms are the computed room descriptors.
	Rooms []plan.RoomDescriptor

	// Report is the plot validation outcome.
	Report plan.ValidationReport

	// Remedies are the Vastu remedy suggestions keyed by category.
	Remedies plan.RemedyMap

	// Filename is the written artifact's base name. Empty when
	// SkipRender is set.
	Filename string

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether the render came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Direction == "" {
		return errors.New(errors.ErrCodeInvalidInput, "plot_direction is required")
	}
	if o.Width <= 0 || o.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "plot_width and plot_length must be positive")
	}
	if o.Shape == "" {
		o.Shape = DefaultShape
	}
	if o.MainDoor == "" {
		o.MainDoor = o.Direction
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if _, err := sink.ParseFormat(o.Format); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
