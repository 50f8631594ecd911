package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/vastuplan/vastuplan/pkg/errors"
	"github.com/vastuplan/vastuplan/pkg/layout"
	"github.com/vastuplan/vastuplan/pkg/plan"
)

// Options controls canvas sizing. Standards control real-world
// dimensions; Options control how meters become pixels.
type Options struct {
	// BasePxPerMeter is the preferred drawing scale before the canvas
	// cap is applied.
	BasePxPerMeter float64

	// MaxCanvasPx caps the larger scaled plot dimension; the scale is
	// reduced uniformly when exceeded, preserving aspect ratio.
	MaxCanvasPx float64

	// PaddingPx is the margin reserved on all sides for labels,
	// dimension lines, the compass and the legend.
	PaddingPx float64

	// MinWallPx keeps walls legible on very small or heavily downscaled
	// plots.
	MinWallPx float64
}

// DefaultOptions returns the standard canvas parameters.
func DefaultOptions() Options {
	return Options{
		BasePxPerMeter: 30,
		MaxCanvasPx:    1000,
		PaddingPx:      100,
		MinWallPx:      4,
	}
}

// Drawing palette. The grid must stay visually subordinate to walls.
var (
	colorWall    = color.RGBA{40, 40, 40, 255}
	colorGrid    = color.RGBA{225, 228, 232, 255}
	colorFixture = color.RGBA{95, 95, 95, 255}
	colorOpening = color.RGBA{70, 70, 70, 255}
	colorText    = color.RGBA{25, 25, 25, 255}
	colorAnnot   = color.RGBA{60, 60, 70, 255}
)

// Renderer rasterizes floor plans. It is immutable after construction
// and safe for concurrent use; every Render call draws on a private
// canvas.
type Renderer struct {
	std   layout.Standards
	opts  Options
	fonts *fontSet
}

// New creates a renderer. Fonts are resolved once here; a failed
// resolution degrades to the built-in face and is not an error.
func New(std layout.Standards, opts Options) *Renderer {
	return &Renderer{
		std:   std,
		opts:  opts,
		fonts: loadFonts(fontCandidates),
	}
}

// Scale returns the effective pixels-per-meter factor for a plot:
// the base scale, reduced uniformly so the larger scaled dimension
// fits within the canvas cap.
func (r *Renderer) Scale(p plan.PlotSpec) float64 {
	s := r.opts.BasePxPerMeter
	if maxDim := math.Max(p.WidthM, p.LengthM) * s; maxDim > r.opts.MaxCanvasPx {
		s *= r.opts.MaxCanvasPx / maxDim
	}
	return s
}

// Render draws the complete annotated plan and returns the canvas.
// Any stage failure aborts the whole render; no partially annotated
// image is ever returned as success.
func (r *Renderer) Render(p plan.PlotSpec, rooms []plan.RoomDescriptor) (image.Image, error) {
	pxPerM := r.Scale(p)

	canvasW := int(math.Ceil(p.WidthM*pxPerM)) + int(2*r.opts.PaddingPx)
	canvasH := int(math.Ceil(p.LengthM*pxPerM)) + int(2*r.opts.PaddingPx)

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetColor(color.White)
	dc.Clear()

	s := &scene{
		dc:     dc,
		pxPerM: pxPerM,
		pad:    r.opts.PaddingPx,
		std:    r.std,
		opts:   r.opts,
		fonts:  r.fonts,
		plotW:  p.WidthM,
		plotL:  p.LengthM,
	}

	s.drawGrid()
	s.drawOuterWalls()

	for _, room := range rooms {
		if err := s.drawRoom(room); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderDraw, err, "drawing %s", room.Type)
		}
	}

	s.drawAnnotations(p)

	return dc.Image(), nil
}

// scene carries the per-render drawing state: the canvas, the resolved
// scale, and the shared standards.
type scene struct {
	dc     *gg.Context
	pxPerM float64
	pad    float64
	std    layout.Standards
	opts   Options
	fonts  *fontSet
	plotW  float64 // plot width in meters
	plotL  float64 // plot length in meters
}

// px converts a length in meters to pixels at the effective scale.
func (s *scene) px(m float64) float64 {
	return m * s.pxPerM
}

// pt converts plot-local meter coordinates to canvas pixels.
func (s *scene) pt(xM, yM float64) (float64, float64) {
	return s.pad + xM*s.pxPerM, s.pad + yM*s.pxPerM
}

// wallPx is the wall stroke width in pixels, floored for legibility.
func (s *scene) wallPx() float64 {
	return math.Max(s.px(s.std.WallThickness), s.opts.MinWallPx)
}

// drawGrid draws light one-meter reference lines across the plot area.
func (s *scene) drawGrid() {
	s.dc.SetColor(colorGrid)
	s.dc.SetLineWidth(1)

	x0, y0 := s.pt(0, 0)
	x1, y1 := s.pt(s.plotW, s.plotL)

	for m := 1.0; m < s.plotW; m++ {
		x, _ := s.pt(m, 0)
		s.dc.DrawLine(x, y0, x, y1)
	}
	for m := 1.0; m < s.plotL; m++ {
		_, y := s.pt(0, m)
		s.dc.DrawLine(x0, y, x1, y)
	}
	s.dc.Stroke()
}

// drawOuterWalls draws the plot boundary as a double-thickness
// rectangle: a full-width stroke with a hairline inner face.
func (s *scene) drawOuterWalls() {
	w := s.wallPx()
	x0, y0 := s.pt(0, 0)

	s.dc.SetColor(colorWall)
	s.dc.SetLineWidth(w)
	s.dc.DrawRectangle(x0, y0, s.px(s.plotW), s.px(s.plotL))
	s.dc.Stroke()

	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(x0+w, y0+w, s.px(s.plotW)-2*w, s.px(s.plotL)-2*w)
	s.dc.Stroke()
}

// drawRoom runs the full per-room pass: cavity walls, fixtures,
// openings and text.
func (s *scene) drawRoom(room plan.RoomDescriptor) error {
	s.drawRoomWalls(room)

	if err := s.drawFixtures(room); err != nil {
		return err
	}
	if err := s.drawOpenings(room); err != nil {
		return err
	}

	s.drawRoomText(room)
	return nil
}

// drawRoomWalls strokes the room rectangle at full wall thickness with
// a 1 px inner rectangle, simulating a cavity wall.
func (s *scene) drawRoomWalls(room plan.RoomDescriptor) {
	w := s.wallPx()
	x, y := s.pt(room.X, room.Y)

	s.dc.SetColor(colorWall)
	s.dc.SetLineWidth(w)
	s.dc.DrawRectangle(x, y, s.px(room.Width), s.px(room.Length))
	s.dc.Stroke()

	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(x+w/2+1, y+w/2+1, s.px(room.Width)-w-2, s.px(room.Length)-w-2)
	s.dc.Stroke()
}
