package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vastuplan/vastuplan/pkg/cache"
	"github.com/vastuplan/vastuplan/pkg/layout"
	"github.com/vastuplan/vastuplan/pkg/plan"
	"github.com/vastuplan/vastuplan/pkg/render"
	"github.com/vastuplan/vastuplan/pkg/render/sink"
)

// Runner encapsulates pipeline execution with render caching.
// Both CLI and API use this to avoid duplicating the flow.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	engine *layout.Engine
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		engine: layout.New(layout.DefaultStandards()),
	}
}

// Execute runs the complete validate → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	spec, err := plan.NewPlotSpec(opts.Direction, opts.Width, opts.Length, opts.Shape, opts.MainDoor)
	if err != nil {
		return nil, err
	}

	result := &Result{Spec: spec}

	layoutStart := time.Now()
	result.Report = r.engine.Validate(spec)
	result.Rooms = r.engine.Compute(spec)
	result.Remedies = r.engine.SuggestRemedies(spec)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RoomCount = len(result.Rooms)

	opts.Logger.Info("computed layout",
		"rooms", len(result.Rooms),
		"valid", result.Report.IsValid,
		"duration", result.Stats.LayoutTime)

	if opts.SkipRender {
		return result, nil
	}

	renderStart := time.Now()
	data, format, hit, err := r.renderBytes(ctx, spec, result.Rooms, opts)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.RenderHit = hit

	filename, err := sink.Write(opts.OutputDir, data, format)
	if err != nil {
		return nil, err
	}
	result.Filename = filename
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered plan",
		"file", filename,
		"format", string(format),
		"cache_hit", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderBytes produces the encoded artifact, consulting the cache
// first. Rendering is deterministic so cached bytes are equivalent to
// a fresh draw.
func (r *Runner) renderBytes(ctx context.Context, spec plan.PlotSpec, rooms []plan.RoomDescriptor, opts Options) ([]byte, sink.Format, bool, error) {
	format, err := sink.ParseFormat(opts.Format)
	if err != nil {
		return nil, "", false, err
	}

	renderOpts := render.DefaultOptions()
	if opts.BasePxPerMeter > 0 {
		renderOpts.BasePxPerMeter = float64(opts.BasePxPerMeter)
	}
	if opts.MaxCanvasPx > 0 {
		renderOpts.MaxCanvasPx = float64(opts.MaxCanvasPx)
	}

	std := r.engine.Standards()
	key := cache.RenderKey(spec, std, renderOpts, string(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, format, true, nil
		}
	}

	img, err := render.New(std, renderOpts).Render(spec, rooms)
	if err != nil {
		return nil, "", false, err
	}
	data, err := sink.Encode(img, format)
	if err != nil {
		return nil, "", false, err
	}

	_ = r.Cache.Set(ctx, key, data, cache.TTLRender)

	return data, format, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
