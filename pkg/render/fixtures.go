package render

import (
	"math"

	"github.com/vastuplan/vastuplan/pkg/errors"
	"github.com/vastuplan/vastuplan/pkg/plan"
)

// fixtureFunc draws the furniture glyphs for one room type.
type fixtureFunc func(s *scene, room plan.RoomDescriptor)

// fixtureHandlers dispatches glyph drawing over the closed room-type
// set. An unregistered type is a hard error rather than a silent blank
// room.
var fixtureHandlers = map[plan.RoomType]fixtureFunc{
	plan.LivingRoom:    (*scene).drawLivingRoomFixtures,
	plan.MasterBedroom: (*scene).drawBedroomFixtures,
	plan.Bedroom:       (*scene).drawBedroomFixtures,
	plan.Kitchen:       (*scene).drawKitchenFixtures,
	plan.DiningRoom:    (*scene).drawDiningRoomFixtures,
	plan.Bathroom:      (*scene).drawBathroomFixtures,
}

// drawFixtures draws the room-type-specific furniture glyphs. Glyph
// sizes are fixed fractions of a meter scaled by the canvas scale;
// they are deliberately not clamped to the room bounds, so an
// implausibly small room can receive fixtures that overflow its walls.
func (s *scene) drawFixtures(room plan.RoomDescriptor) error {
	handler, ok := fixtureHandlers[room.Type]
	if !ok {
		return errors.New(errors.ErrCodeInvalidRoomType, "no fixture handler for room type %q", room.Type)
	}
	s.dc.SetColor(colorFixture)
	handler(s, room)
	return nil
}

// inset returns the pixel origin of the room interior, one wall
// thickness plus a small gap in from the room's corner.
func (s *scene) inset(room plan.RoomDescriptor) (float64, float64) {
	x, y := s.pt(room.X, room.Y)
	off := s.wallPx() + 2
	return x + off, y + off
}

// drawLivingRoomFixtures draws a sofa (2.2 m x 0.9 m with back and
// armrests) against the room's top wall and a 1.0 m x 0.6 m coffee
// table in front of it.
func (s *scene) drawLivingRoomFixtures(room plan.RoomDescriptor) {
	cx, cy := s.pt(room.X+room.Width/2, room.Y)

	sofaW, sofaD := s.px(2.2), s.px(0.9)
	sofaX := cx - sofaW/2
	sofaY := cy + s.wallPx() + s.px(0.2)

	s.dc.SetLineWidth(1.5)
	s.dc.DrawRectangle(sofaX, sofaY, sofaW, sofaD)
	s.dc.Stroke()

	// Backrest strip and armrests, each 0.2 m deep.
	arm := s.px(0.2)
	s.dc.DrawRectangle(sofaX, sofaY, sofaW, arm)
	s.dc.DrawRectangle(sofaX, sofaY, arm, sofaD)
	s.dc.DrawRectangle(sofaX+sofaW-arm, sofaY, arm, sofaD)
	s.dc.Stroke()

	tableW, tableD := s.px(1.0), s.px(0.6)
	tableY := sofaY + sofaD + s.px(0.4)
	s.dc.DrawRectangle(cx-tableW/2, tableY, tableW, tableD)
	s.dc.Stroke()
}

// drawBedroomFixtures draws a centered bed (1.8 m x 2.0 m) with a
// 0.4 m pillow zone and a 0.6 m deep wardrobe strip along the room's
// bottom wall.
func (s *scene) drawBedroomFixtures(room plan.RoomDescriptor) {
	cx, _ := s.pt(room.X+room.Width/2, 0)
	_, top := s.pt(0, room.Y)

	bedW, bedL := s.px(1.8), s.px(2.0)
	bedX := cx - bedW/2
	bedY := top + s.wallPx() + s.px(0.3)

	s.dc.SetLineWidth(1.5)
	s.dc.DrawRectangle(bedX, bedY, bedW, bedL)
	s.dc.Stroke()

	// Pillow zone at the head of the bed: two pillows, 0.4 m deep.
	pillowD := s.px(0.4)
	pad := s.px(0.1)
	pillowW := (bedW - 3*pad) / 2
	s.dc.DrawRectangle(bedX+pad, bedY+pad, pillowW, pillowD)
	s.dc.DrawRectangle(bedX+2*pad+pillowW, bedY+pad, pillowW, pillowD)
	s.dc.Stroke()

	// Fold line across the foot of the bed.
	foldY := bedY + bedL - s.px(0.5)
	s.dc.DrawLine(bedX, foldY, bedX+bedW, foldY)
	s.dc.Stroke()

	// Wardrobe strip along the bottom wall, 0.6 m deep.
	wx, wy := s.pt(room.X, room.Y+room.Length)
	depth := s.px(0.6)
	wardrobeY := wy - s.wallPx() - depth
	s.dc.DrawRectangle(wx+s.wallPx(), wardrobeY, s.px(room.Width)-2*s.wallPx(), depth)
	s.dc.Stroke()
	// Sliding-door split.
	s.dc.DrawLine(wx+s.px(room.Width)/2, wardrobeY, wx+s.px(room.Width)/2, wardrobeY+depth)
	s.dc.Stroke()
}

// drawKitchenFixtures draws an L-shaped counter (0.6 m deep) along the
// top and left walls, a double-basin sink with a faucet arc, a 0.6 m
// four-burner stove, and a 0.7 m x 0.75 m refrigerator block.
func (s *scene) drawKitchenFixtures(room plan.RoomDescriptor) {
	ix, iy := s.inset(room)
	wPx, lPx := s.px(room.Width), s.px(room.Length)
	counter := s.px(0.6)

	s.dc.SetLineWidth(1.5)
	// Counter run along the top wall, then down the left wall.
	s.dc.DrawRectangle(ix, iy, wPx-2*s.wallPx(), counter)
	s.dc.DrawRectangle(ix, iy+counter, counter, lPx-2*s.wallPx()-counter)
	s.dc.Stroke()

	// Double-basin sink on the top run: two 0.35 m x 0.4 m basins.
	basinW, basinD := s.px(0.35), s.px(0.4)
	sinkX := ix + s.px(0.8)
	sinkY := iy + (counter-basinD)/2
	s.dc.DrawRectangle(sinkX, sinkY, basinW, basinD)
	s.dc.DrawRectangle(sinkX+basinW+s.px(0.05), sinkY, basinW, basinD)
	s.dc.Stroke()
	// Faucet arc between the basins.
	s.dc.DrawArc(sinkX+basinW+s.px(0.025), sinkY, s.px(0.12), 0, math.Pi)
	s.dc.Stroke()

	// Four-burner stove on the left run.
	stove := s.px(0.6)
	stoveX := ix
	stoveY := iy + counter + s.px(0.6)
	s.dc.DrawRectangle(stoveX, stoveY, stove, stove)
	s.dc.Stroke()
	burner := s.px(0.08)
	for _, dx := range []float64{0.18, 0.42} {
		for _, dy := range []float64{0.18, 0.42} {
			s.dc.DrawCircle(stoveX+s.px(dx), stoveY+s.px(dy), burner)
		}
	}
	s.dc.Stroke()

	// Refrigerator block in the bottom-right interior corner.
	fridgeW, fridgeD := s.px(0.7), s.px(0.75)
	fx := ix + wPx - 2*s.wallPx() - fridgeW
	fy := iy + lPx - 2*s.wallPx() - fridgeD
	s.dc.DrawRectangle(fx, fy, fridgeW, fridgeD)
	s.dc.Stroke()
	// Door handle.
	s.dc.DrawLine(fx+fridgeW-s.px(0.08), fy+s.px(0.1), fx+fridgeW-s.px(0.08), fy+fridgeD-s.px(0.1))
	s.dc.Stroke()
}

// drawDiningRoomFixtures draws a centered 1.8 m x 1.0 m table with six
// 0.45 m chairs: two along each long side and one at each end.
func (s *scene) drawDiningRoomFixtures(room plan.RoomDescriptor) {
	cx, cy := s.pt(room.X+room.Width/2, room.Y+room.Length/2)

	tableW, tableD := s.px(1.8), s.px(1.0)
	tx, ty := cx-tableW/2, cy-tableD/2

	s.dc.SetLineWidth(1.5)
	s.dc.DrawRectangle(tx, ty, tableW, tableD)
	s.dc.Stroke()

	chair := s.px(0.45)
	gap := s.px(0.1)
	// Two chairs on each long side.
	for _, fx := range []float64{0.25, 0.65} {
		chairX := tx + tableW*fx - chair/2
		s.dc.DrawRectangle(chairX, ty-gap-chair, chair, chair)
		s.dc.DrawRectangle(chairX, ty+tableD+gap, chair, chair)
	}
	// One chair at each end.
	s.dc.DrawRectangle(tx-gap-chair, cy-chair/2, chair, chair)
	s.dc.DrawRectangle(tx+tableW+gap, cy-chair/2, chair, chair)
	s.dc.Stroke()
}

// drawBathroomFixtures draws a toilet (0.4 m x 0.55 m ellipse with
// tank), a 0.5 m x 0.4 m sink with a basin arc, and a 0.9 m shower
// tray in the far corner.
func (s *scene) drawBathroomFixtures(room plan.RoomDescriptor) {
	ix, iy := s.inset(room)
	wPx, lPx := s.px(room.Width), s.px(room.Length)

	s.dc.SetLineWidth(1.5)

	// Toilet against the top wall: tank rectangle plus bowl ellipse.
	tankW, tankD := s.px(0.4), s.px(0.15)
	toiletX := ix + s.px(0.2)
	s.dc.DrawRectangle(toiletX, iy, tankW, tankD)
	s.dc.Stroke()
	s.dc.DrawEllipse(toiletX+tankW/2, iy+tankD+s.px(0.27), s.px(0.2), s.px(0.27))
	s.dc.Stroke()

	// Sink on the right wall with a basin arc.
	sinkW, sinkD := s.px(0.5), s.px(0.4)
	sinkX := ix + wPx - 2*s.wallPx() - sinkW
	sinkY := iy + s.px(0.2)
	s.dc.DrawRectangle(sinkX, sinkY, sinkW, sinkD)
	s.dc.Stroke()
	s.dc.DrawArc(sinkX+sinkW/2, sinkY+sinkD/2, s.px(0.15), 0, math.Pi)
	s.dc.Stroke()

	// Shower tray in the bottom-left corner with a drain mark.
	tray := s.px(0.9)
	trayY := iy + lPx - 2*s.wallPx() - tray
	s.dc.DrawRectangle(ix, trayY, tray, tray)
	s.dc.Stroke()
	s.dc.DrawCircle(ix+tray/2, trayY+tray/2, s.px(0.05))
	s.dc.Stroke()
	s.dc.DrawLine(ix, trayY, ix+tray, trayY+tray)
	s.dc.Stroke()
}
