// Package render rasterizes a plot specification and its computed room
// placements into an annotated architectural drawing.
//
// The renderer owns every pixel-level decision: meters-to-pixels scale
// resolution, the background grid, cavity walls, per-room furniture
// glyphs, door and window openings, labels, dimension lines, the
// compass rose, and the legend. It never alters layout; room geometry
// arrives fully computed from the layout engine.
//
// # Pipeline
//
//	r := render.New(layout.DefaultStandards(), render.DefaultOptions())
//	img, err := r.Render(spec, rooms)
//	if err != nil { ... }
//	filename, err := sink.Write(outputDir, img, sink.FormatPNG)
//
// Rendering is deterministic: identical inputs produce identical pixel
// content. Persistence (unique filenames, encoding, atomic writes)
// lives in the sink subpackage.
//
// # Fonts
//
// Text is drawn with the first system font found from an ordered
// candidate list. When no candidate resolves, the renderer degrades to
// a built-in bitmap face; a missing font never fails a render.
package render
