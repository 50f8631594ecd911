package render

import (
	"image/color"
	"math"

	"github.com/vastuplan/vastuplan/pkg/errors"
	"github.com/vastuplan/vastuplan/pkg/plan"
)

// wallSide identifies which wall of a room an opening sits on.
type wallSide int

const (
	wallNorth wallSide = iota
	wallSouth
	wallEast
	wallWest
)

// doorSpec fixes where a room type's door goes. The opening is always
// centered on its wall.
type doorSpec struct {
	wall wallSide
	main bool // main entrance: rendered with a double-line marker
}

// doorSpecs is the fixed door lookup per room type.
var doorSpecs = map[plan.RoomType]doorSpec{
	plan.LivingRoom:    {wall: wallNorth, main: true},
	plan.MasterBedroom: {wall: wallWest},
	plan.Kitchen:       {wall: wallEast},
	plan.DiningRoom:    {wall: wallNorth},
	plan.Bedroom:       {wall: wallEast},
	plan.Bathroom:      {wall: wallWest},
}

// windowSpecs is the fixed window lookup per room type. Each entry is a
// wall carrying one standard window centered on it.
var windowSpecs = map[plan.RoomType][]wallSide{
	plan.LivingRoom:    {wallWest, wallSouth},
	plan.MasterBedroom: {wallEast},
	plan.Kitchen:       {wallSouth},
	plan.DiningRoom:    {wallEast},
	plan.Bedroom:       {wallNorth},
	plan.Bathroom:      {wallNorth},
}

// drawOpenings draws the room's door (with swing arc) and windows.
// Both lookups dispatch over the closed room-type set and fail loudly
// for anything unregistered.
func (s *scene) drawOpenings(room plan.RoomDescriptor) error {
	door, ok := doorSpecs[room.Type]
	if !ok {
		return errors.New(errors.ErrCodeInvalidRoomType, "no door placement for room type %q", room.Type)
	}
	windows, ok := windowSpecs[room.Type]
	if !ok {
		return errors.New(errors.ErrCodeInvalidRoomType, "no window placement for room type %q", room.Type)
	}

	s.drawDoor(room, door)
	for _, wall := range windows {
		s.drawWindow(room, wall)
	}
	return nil
}

// wallAnchor returns the pixel midpoint of a room wall and whether the
// wall runs horizontally.
func (s *scene) wallAnchor(room plan.RoomDescriptor, wall wallSide) (x, y float64, horizontal bool) {
	switch wall {
	case wallNorth:
		x, y = s.pt(room.X+room.Width/2, room.Y)
		horizontal = true
	case wallSouth:
		x, y = s.pt(room.X+room.Width/2, room.Y+room.Length)
		horizontal = true
	case wallEast:
		x, y = s.pt(room.X+room.Width, room.Y+room.Length/2)
	case wallWest:
		x, y = s.pt(room.X, room.Y+room.Length/2)
	}
	return x, y, horizontal
}

// drawDoor erases a door-width gap in the wall and draws the leaf with
// its quarter-circle swing arc. Main doors get a double-line marker
// across the opening.
func (s *scene) drawDoor(room plan.RoomDescriptor, spec doorSpec) {
	d := s.px(s.std.DoorWidth)
	cx, cy, horizontal := s.wallAnchor(room, spec.wall)

	// Clear the opening.
	s.dc.SetColor(color.White)
	s.dc.SetLineWidth(s.wallPx() + 2)
	if horizontal {
		s.dc.DrawLine(cx-d/2, cy, cx+d/2, cy)
	} else {
		s.dc.DrawLine(cx, cy-d/2, cx, cy+d/2)
	}
	s.dc.Stroke()

	// Leaf and swing arc, hinged at one end of the opening, opening
	// into the room.
	s.dc.SetColor(colorOpening)
	s.dc.SetLineWidth(1.5)
	switch spec.wall {
	case wallNorth:
		hx, hy := cx-d/2, cy
		s.dc.DrawLine(hx, hy, hx, hy+d)
		s.dc.DrawArc(hx, hy, d, 0, math.Pi/2)
	case wallSouth:
		hx, hy := cx-d/2, cy
		s.dc.DrawLine(hx, hy, hx, hy-d)
		s.dc.DrawArc(hx, hy, d, -math.Pi/2, 0)
	case wallWest:
		hx, hy := cx, cy-d/2
		s.dc.DrawLine(hx, hy, hx+d, hy)
		s.dc.DrawArc(hx, hy, d, 0, math.Pi/2)
	case wallEast:
		hx, hy := cx, cy-d/2
		s.dc.DrawLine(hx, hy, hx-d, hy)
		s.dc.DrawArc(hx, hy, d, math.Pi/2, math.Pi)
	}
	s.dc.Stroke()

	if spec.main {
		s.drawMainDoorMarker(cx, cy, d, horizontal)
	}
}

// drawMainDoorMarker draws the double-line marker across a main
// entrance opening.
func (s *scene) drawMainDoorMarker(cx, cy, d float64, horizontal bool) {
	off := s.wallPx()/2 + 3
	s.dc.SetColor(colorOpening)
	s.dc.SetLineWidth(2)
	if horizontal {
		s.dc.DrawLine(cx-d/2, cy-off, cx+d/2, cy-off)
		s.dc.DrawLine(cx-d/2, cy-off-4, cx+d/2, cy-off-4)
	} else {
		s.dc.DrawLine(cx-off, cy-d/2, cx-off, cy+d/2)
		s.dc.DrawLine(cx-off-4, cy-d/2, cx-off-4, cy+d/2)
	}
	s.dc.Stroke()
}

// drawWindow draws a three-pane window frame with a sill line, centered
// on the given wall. The frame runs horizontally on north/south walls
// and vertically on east/west walls.
func (s *scene) drawWindow(room plan.RoomDescriptor, wall wallSide) {
	w := s.px(s.std.WindowWidth)
	depth := s.wallPx() + 2
	cx, cy, horizontal := s.wallAnchor(room, wall)

	// Clear the wall behind the frame.
	s.dc.SetColor(color.White)
	s.dc.SetLineWidth(s.wallPx() + 2)
	if horizontal {
		s.dc.DrawLine(cx-w/2, cy, cx+w/2, cy)
	} else {
		s.dc.DrawLine(cx, cy-w/2, cx, cy+w/2)
	}
	s.dc.Stroke()

	s.dc.SetColor(colorOpening)
	s.dc.SetLineWidth(1)
	if horizontal {
		s.dc.DrawRectangle(cx-w/2, cy-depth/2, w, depth)
		// Pane dividers.
		s.dc.DrawLine(cx-w/6, cy-depth/2, cx-w/6, cy+depth/2)
		s.dc.DrawLine(cx+w/6, cy-depth/2, cx+w/6, cy+depth/2)
		s.dc.Stroke()
		// Sill line on the outer face.
		sillY := cy + depth/2 + 2
		if wall == wallNorth {
			sillY = cy - depth/2 - 2
		}
		s.dc.DrawLine(cx-w/2-2, sillY, cx+w/2+2, sillY)
	} else {
		s.dc.DrawRectangle(cx-depth/2, cy-w/2, depth, w)
		s.dc.DrawLine(cx-depth/2, cy-w/6, cx+depth/2, cy-w/6)
		s.dc.DrawLine(cx-depth/2, cy+w/6, cx+depth/2, cy+w/6)
		s.dc.Stroke()
		sillX := cx + depth/2 + 2
		if wall == wallWest {
			sillX = cx - depth/2 - 2
		}
		s.dc.DrawLine(sillX, cy-w/2-2, sillX, cy+w/2+2)
	}
	s.dc.Stroke()
}
