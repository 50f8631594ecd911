package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vastuplan/vastuplan/pkg/plan"
)

// Text sizes in pixels. The basicfont fallback ignores these.
const (
	titleFontSize  = 18
	labelFontSize  = 13
	dimFontSize    = 11
	legendFontSize = 11
)

// drawRoomText draws the room name and its dimension string, centered
// horizontally in the room, each on a solid white backing patch so the
// text stays legible over grid lines and fixtures.
func (s *scene) drawRoomText(room plan.RoomDescriptor) {
	cx, cy := s.pt(room.X+room.Width/2, room.Y+room.Length/2)

	label := room.Type.Label()
	dims := fmt.Sprintf("%.1f × %.1f m", room.Width, room.Length)

	s.drawBackedText(label, cx, cy-9, labelFontSize)
	s.drawBackedText(dims, cx, cy+9, dimFontSize)
}

// drawBackedText draws text centered at (x, y) over a white patch.
func (s *scene) drawBackedText(text string, x, y, size float64) {
	s.dc.SetFontFace(s.fonts.face(size))
	w, h := s.dc.MeasureString(text)

	s.dc.SetColor(color.White)
	s.dc.DrawRectangle(x-w/2-3, y-h/2-2, w+6, h+4)
	s.dc.Fill()

	s.dc.SetColor(colorText)
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// drawAnnotations draws everything outside the room pass: overall
// dimension lines, the title, the scale readout, the compass rose and
// the legend.
func (s *scene) drawAnnotations(p plan.PlotSpec) {
	s.drawDimensionLines(p)
	s.drawTitle(p)
	s.drawCompass()
	s.drawLegend()
}

// drawDimensionLines draws arrowed lines for the overall plot width
// (above the plan) and length (left of the plan), labeled in meters.
func (s *scene) drawDimensionLines(p plan.PlotSpec) {
	x0, y0 := s.pt(0, 0)
	x1, y1 := s.pt(p.WidthM, p.LengthM)

	s.dc.SetColor(colorAnnot)
	s.dc.SetLineWidth(1)

	// Width, along the top edge.
	dimY := y0 - 40
	s.drawArrowLine(x0, dimY, x1, dimY)
	// Extension ticks down to the plot corners.
	s.dc.DrawLine(x0, dimY-5, x0, dimY+5)
	s.dc.DrawLine(x1, dimY-5, x1, dimY+5)
	s.dc.Stroke()

	s.dc.SetFontFace(s.fonts.face(dimFontSize))
	s.dc.DrawStringAnchored(fmt.Sprintf("%.1f m", p.WidthM), (x0+x1)/2, dimY-10, 0.5, 0.5)

	// Length, along the left edge, label rotated to read upward.
	dimX := x0 - 40
	s.drawArrowLine(dimX, y0, dimX, y1)
	s.dc.DrawLine(dimX-5, y0, dimX+5, y0)
	s.dc.DrawLine(dimX-5, y1, dimX+5, y1)
	s.dc.Stroke()

	s.dc.Push()
	s.dc.RotateAbout(-math.Pi/2, dimX-10, (y0+y1)/2)
	s.dc.DrawStringAnchored(fmt.Sprintf("%.1f m", p.LengthM), dimX-10, (y0+y1)/2, 0.5, 0.5)
	s.dc.Pop()
}

// drawArrowLine draws a line with filled arrowheads at both ends.
func (s *scene) drawArrowLine(x1, y1, x2, y2 float64) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
	s.drawArrowHead(x1, y1, x2, y2)
	s.drawArrowHead(x2, y2, x1, y1)
}

// drawArrowHead draws a small filled triangle at (x, y) pointing away
// from (fromX, fromY).
func (s *scene) drawArrowHead(x, y, fromX, fromY float64) {
	const size = 6
	angle := math.Atan2(y-fromY, x-fromX)
	s.dc.MoveTo(x, y)
	s.dc.LineTo(x-size*math.Cos(angle-math.Pi/7), y-size*math.Sin(angle-math.Pi/7))
	s.dc.LineTo(x-size*math.Cos(angle+math.Pi/7), y-size*math.Sin(angle+math.Pi/7))
	s.dc.ClosePath()
	s.dc.Fill()
}

// drawTitle draws the plan title and the scale readout centered above
// the drawing.
func (s *scene) drawTitle(p plan.PlotSpec) {
	cx := float64(s.dc.Width()) / 2

	s.dc.SetColor(colorText)
	s.dc.SetFontFace(s.fonts.face(titleFontSize))
	s.dc.DrawStringAnchored("Vastu Compliant Floor Plan (NBC Standards)", cx, 28, 0.5, 0.5)

	s.dc.SetFontFace(s.fonts.face(dimFontSize))
	readout := fmt.Sprintf("%s facing · Scale 1:%d", p.Direction.Label(), s.scaleDenominator())
	s.dc.DrawStringAnchored(readout, cx, 48, 0.5, 0.5)
}

// scaleDenominator reports the drawing scale as the N of "1:N",
// derived from the effective pixels-per-meter factor.
func (s *scene) scaleDenominator() int {
	if s.pxPerM <= 0 {
		return 0
	}
	return int(math.Round(100 / s.pxPerM))
}

// drawCompass draws a compass rose in the top-right padding area:
// a circle with cardinal labels and a filled north needle.
func (s *scene) drawCompass() {
	r := 26.0
	cx := float64(s.dc.Width()) - r - 24
	cy := r + 34

	s.dc.SetColor(colorAnnot)
	s.dc.SetLineWidth(1.5)
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Stroke()

	// North needle.
	s.dc.MoveTo(cx, cy-r+4)
	s.dc.LineTo(cx-5, cy+4)
	s.dc.LineTo(cx+5, cy+4)
	s.dc.ClosePath()
	s.dc.Fill()

	s.dc.SetFontFace(s.fonts.face(dimFontSize))
	s.dc.DrawStringAnchored("N", cx, cy-r-8, 0.5, 0.5)
	s.dc.DrawStringAnchored("S", cx, cy+r+8, 0.5, 0.5)
	s.dc.DrawStringAnchored("E", cx+r+8, cy, 0.5, 0.5)
	s.dc.DrawStringAnchored("W", cx-r-8, cy, 0.5, 0.5)
}

// drawLegend draws the bottom-right legend box listing the fixed
// construction standards used in the drawing.
func (s *scene) drawLegend() {
	lines := []string{
		fmt.Sprintf("Wall thickness: %.2f m", s.std.WallThickness),
		fmt.Sprintf("Door width: %.1f m", s.std.DoorWidth),
		fmt.Sprintf("Window: %.1f × %.1f m", s.std.WindowWidth, s.std.WindowHeight),
		fmt.Sprintf("Room height: %.1f m", s.std.RoomHeight),
		fmt.Sprintf("Scale 1:%d", s.scaleDenominator()),
	}

	const lineH = 14.0
	boxW := 170.0
	boxH := lineH*float64(len(lines)) + 24
	x := float64(s.dc.Width()) - boxW - 12
	y := float64(s.dc.Height()) - boxH - 12

	s.dc.SetColor(color.White)
	s.dc.DrawRectangle(x, y, boxW, boxH)
	s.dc.Fill()
	s.dc.SetColor(colorAnnot)
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(x, y, boxW, boxH)
	s.dc.Stroke()

	s.dc.SetColor(colorText)
	s.dc.SetFontFace(s.fonts.face(legendFontSize))
	s.dc.DrawStringAnchored("Standards", x+8, y+12, 0, 0.5)
	for i, line := range lines {
		s.dc.DrawStringAnchored(line, x+8, y+26+lineH*float64(i), 0, 0.5)
	}
}
