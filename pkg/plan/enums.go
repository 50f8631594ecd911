package plan

import "github.com/vastuplan/vastuplan/pkg/errors"

// Direction is one of the eight compass points used for plot orientation,
// main door placement, and room facing.
type Direction string

// Compass directions. The wire values use snake_case to stay compatible
// with stored plan records and API clients.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	NorthEast Direction = "north_east"
	NorthWest Direction = "north_west"
	SouthEast Direction = "south_east"
	SouthWest Direction = "south_west"
)

// Directions lists all valid compass directions in a stable order.
var Directions = []Direction{
	North, South, East, West,
	NorthEast, NorthWest, SouthEast, SouthWest,
}

// ParseDirection converts a string into a Direction.
// Unknown values are rejected with an INVALID_DIRECTION error.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if s == string(d) {
			return d, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "unknown direction: %q", s)
}

// Label returns a human-readable form, e.g. "North-East".
func (d Direction) Label() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case NorthEast:
		return "North-East"
	case NorthWest:
		return "North-West"
	case SouthEast:
		return "South-East"
	case SouthWest:
		return "South-West"
	}
	return string(d)
}

// Shape describes the buildable parcel outline.
type Shape string

// Supported plot shapes.
const (
	Rectangular Shape = "rectangular"
	Square      Shape = "square"
	LShaped     Shape = "l_shaped"
)

// Shapes lists all valid plot shapes in a stable order.
var Shapes = []Shape{Rectangular, Square, LShaped}

// ParseShape converts a string into a Shape.
// Unknown values are rejected with an INVALID_SHAPE error.
func ParseShape(s string) (Shape, error) {
	for _, sh := range Shapes {
		if s == string(sh) {
			return sh, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidShape, "unknown plot shape: %q", s)
}

// RoomType identifies one of the room kinds the engines know how to
// place and draw. The set is closed: layout and rendering dispatch over
// it explicitly and fail loudly on anything else.
type RoomType string

// Known room types.
const (
	LivingRoom    RoomType = "living_room"
	MasterBedroom RoomType = "master_bedroom"
	Kitchen       RoomType = "kitchen"
	DiningRoom    RoomType = "dining_room"
	Bedroom       RoomType = "bedroom"
	Bathroom      RoomType = "bathroom"
)

// RoomTypes lists all room types the renderer can draw.
var RoomTypes = []RoomType{
	LivingRoom, MasterBedroom, Kitchen, DiningRoom, Bedroom, Bathroom,
}

// ParseRoomType converts a string into a RoomType.
// Unknown values are rejected with an INVALID_ROOM_TYPE error.
func ParseRoomType(s string) (RoomType, error) {
	for _, rt := range RoomTypes {
		if s == string(rt) {
			return rt, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidRoomType, "unknown room type: %q", s)
}

// Label returns the display name: title-cased with underscores replaced
// by spaces, e.g. "Master Bedroom".
func (rt RoomType) Label() string {
	switch rt {
	case LivingRoom:
		return "Living Room"
	case MasterBedroom:
		return "Master Bedroom"
	case Kitchen:
		return "Kitchen"
	case DiningRoom:
		return "Dining Room"
	case Bedroom:
		return "Bedroom"
	case Bathroom:
		return "Bathroom"
	}
	return string(rt)
}
