// Package plan defines the domain model shared by the layout and
// rendering engines: the plot specification, computed room placements,
// and the advisory outputs (validation report and remedy map).
//
// All types are plain values. A PlotSpec is validated once at
// construction; everything derived from it (RoomDescriptor lists,
// reports, remedies) is computed deterministically and never mutated.
package plan

import "github.com/vastuplan/vastuplan/pkg/errors"

// PlotSpec is the immutable description of the buildable parcel.
// Construct via NewPlotSpec so dimension and enum invariants hold.
type PlotSpec struct {
	Direction Direction `json:"plot_direction"`
	WidthM    float64   `json:"plot_width"`
	LengthM   float64   `json:"plot_length"`
	Shape     Shape     `json:"plot_shape"`

	// MainDoor is the requested main door direction, if any.
	MainDoor Direction `json:"main_door_position,omitempty"`
}

// NewPlotSpec builds a validated PlotSpec from raw request values.
// Non-positive dimensions and unknown enum values are hard input errors;
// advisory concerns (shape, ratio, area) are left to the layout engine's
// Validate, which produces data rather than errors.
func NewPlotSpec(direction string, widthM, lengthM float64, shape, mainDoor string) (PlotSpec, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return PlotSpec{}, err
	}
	sh, err := ParseShape(shape)
	if err != nil {
		return PlotSpec{}, err
	}
	if widthM <= 0 {
		return PlotSpec{}, errors.New(errors.ErrCodeInvalidDimension, "plot width must be > 0, got %g", widthM)
	}
	if lengthM <= 0 {
		return PlotSpec{}, errors.New(errors.ErrCodeInvalidDimension, "plot length must be > 0, got %g", lengthM)
	}

	spec := PlotSpec{
		Direction: dir,
		WidthM:    widthM,
		LengthM:   lengthM,
		Shape:     sh,
	}
	if mainDoor != "" {
		md, err := ParseDirection(mainDoor)
		if err != nil {
			return PlotSpec{}, err
		}
		spec.MainDoor = md
	}
	return spec, nil
}

// Area returns the plot area in square meters.
func (p PlotSpec) Area() float64 {
	return p.WidthM * p.LengthM
}

// RoomDescriptor is the computed placement of one room within the plot.
// Coordinates are in meters with the origin at the plot's top-left
// corner; width grows east, length grows south.
type RoomDescriptor struct {
	Type   RoomType `json:"room_type"`
	X      float64  `json:"position_x"`
	Y      float64  `json:"position_y"`
	Width  float64  `json:"width"`
	Length float64  `json:"length"`

	// Facing is the direction assigned by the layout template. It feeds
	// the remedy checks and is not necessarily a wall orientation.
	Facing Direction `json:"direction"`
}

// ValidationReport carries the outcome of the advisory plot checks.
// A false IsValid is guidance, not a rejection: the layout and renderer
// still run for such plots.
type ValidationReport struct {
	IsValid  bool     `json:"is_valid"`
	Messages []string `json:"messages"`
}

// RemedyCategory groups advisory remedy strings.
type RemedyCategory string

// Remedy categories, in report order.
const (
	RemedyPlotShape     RemedyCategory = "plot_shape"
	RemedyRoomPlacement RemedyCategory = "room_placement"
	RemedyEnergyBalance RemedyCategory = "energy_balance"
)

// RemedyCategories lists the categories in stable report order.
var RemedyCategories = []RemedyCategory{
	RemedyPlotShape, RemedyRoomPlacement, RemedyEnergyBalance,
}

// RemedyMap maps each category to its ordered advisory strings.
// Every category key is always present, possibly with an empty slice.
type RemedyMap map[RemedyCategory][]string
