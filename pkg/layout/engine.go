// Package layout converts a validated plot specification into room
// geometry and directional compliance diagnostics.
//
// Placement is computed by fixed formulas over a quadrant template, not
// by search: the same PlotSpec always yields the same four rooms in the
// same order. Plot quality concerns (shape, aspect ratio, minimum area)
// are advisory data produced by Validate and SuggestRemedies, never
// errors.
package layout

import (
	"fmt"

	"github.com/vastuplan/vastuplan/pkg/plan"
)

// proportion is a room's size relative to the plot dimensions.
type proportion struct {
	widthRatio  float64
	lengthRatio float64
}

// roomProportions fixes each template room's share of the plot. The
// living room and master bedroom take just under half of each dimension
// to leave space for walls and corridors.
var roomProportions = map[plan.RoomType]proportion{
	plan.LivingRoom:    {widthRatio: 0.48, lengthRatio: 0.48},
	plan.MasterBedroom: {widthRatio: 0.48, lengthRatio: 0.48},
	plan.Kitchen:       {widthRatio: 0.35, lengthRatio: 0.35},
	plan.DiningRoom:    {widthRatio: 0.35, lengthRatio: 0.35},
}

// idealDirections is the canonical Vastu facing for each template room.
// The quadrant template assigns exactly these, so the remedy comparison
// only fires if the template changes.
var idealDirections = map[plan.RoomType]plan.Direction{
	plan.LivingRoom:    plan.North,
	plan.MasterBedroom: plan.SouthWest,
	plan.Kitchen:       plan.SouthEast,
	plan.DiningRoom:    plan.West,
}

// placementRemedies holds the advisory issued when a room's facing
// deviates from its ideal direction.
var placementRemedies = map[plan.RoomType]string{
	plan.LivingRoom:    "Living room not in ideal north direction. Use light colors and proper lighting.",
	plan.MasterBedroom: "Master bedroom not in ideal south-west direction. Consider using earth colors.",
	plan.Kitchen:       "Kitchen not in ideal south-east direction. Use copper or bronze items.",
	plan.DiningRoom:    "Dining room not in ideal west direction. Prefer warm, grounding decor.",
}

// shapeRemedies are always suggested, in order, for L-shaped plots.
var shapeRemedies = []string{
	"Place a mirror in the cut portion",
	"Add plants or water features in the cut area",
	"Install proper lighting in the cut portion",
}

// energyRemedies are general suggestions appended to every remedy map.
var energyRemedies = []string{
	"Place indoor plants in north-east corner",
	"Install proper ventilation in all rooms",
	"Ensure adequate natural light in all rooms",
}

// minPlotArea is the minimum acceptable plot area in square meters.
const minPlotArea = 30.0

// Engine computes room placement and plot diagnostics using a fixed set
// of construction standards. The zero value is not usable; construct
// with New.
type Engine struct {
	std Standards
}

// New creates a layout engine with the given standards.
func New(std Standards) *Engine {
	return &Engine{std: std}
}

// Standards returns the construction standards this engine was built with.
func (e *Engine) Standards() Standards {
	return e.std
}

// Compute lays out the four template rooms in plot quadrants:
// living room top-left, master bedroom top-right, kitchen bottom-left,
// dining room bottom-right.
//
// Each room's raw proportional size is shrunk by the wall thickness and
// half the corridor width; quadrant origins sit at the previous room's
// raw extent plus the corridor width. The result order is fixed:
// living_room, master_bedroom, kitchen, dining_room.
//
// Compute is pure and always succeeds for a constructed PlotSpec.
// Callers wanting placement-quality feedback run Validate first.
func (e *Engine) Compute(p plan.PlotSpec) []plan.RoomDescriptor {
	width, length := p.WidthM, p.LengthM
	shrink := e.std.WallThickness + e.std.CorridorWidth/2

	livingW := width * roomProportions[plan.LivingRoom].widthRatio
	livingL := length * roomProportions[plan.LivingRoom].lengthRatio
	masterW := width * roomProportions[plan.MasterBedroom].widthRatio
	masterL := length * roomProportions[plan.MasterBedroom].lengthRatio
	kitchenW := width * roomProportions[plan.Kitchen].widthRatio
	kitchenL := length * roomProportions[plan.Kitchen].lengthRatio
	diningW := width * roomProportions[plan.DiningRoom].widthRatio
	diningL := length * roomProportions[plan.DiningRoom].lengthRatio

	return []plan.RoomDescriptor{
		{
			Type:   plan.LivingRoom,
			X:      0,
			Y:      0,
			Width:  livingW - shrink,
			Length: livingL - shrink,
			Facing: idealDirections[plan.LivingRoom],
		},
		{
			Type:   plan.MasterBedroom,
			X:      livingW + e.std.CorridorWidth,
			Y:      0,
			Width:  masterW - shrink,
			Length: masterL - shrink,
			Facing: idealDirections[plan.MasterBedroom],
		},
		{
			Type:   plan.Kitchen,
			X:      0,
			Y:      livingL + e.std.CorridorWidth,
			Width:  kitchenW - shrink,
			Length: kitchenL - shrink,
			Facing: idealDirections[plan.Kitchen],
		},
		{
			Type:   plan.DiningRoom,
			X:      kitchenW + e.std.CorridorWidth,
			Y:      masterL + e.std.CorridorWidth,
			Width:  diningW - shrink,
			Length: diningL - shrink,
			Facing: idealDirections[plan.DiningRoom],
		},
	}
}

// Validate runs the three independent plot checks and reports them
// cumulatively: every failing check appends its own message and IsValid
// is the conjunction of all three. The outcome is advice, not an error;
// malformed geometry is rejected earlier by plan.NewPlotSpec.
func (e *Engine) Validate(p plan.PlotSpec) plan.ValidationReport {
	report := plan.ValidationReport{IsValid: true, Messages: []string{}}

	if p.Shape == plan.LShaped {
		report.IsValid = false
		report.Messages = append(report.Messages,
			"L-shaped plots require special consideration. Consider adding a remedy.")
	}

	ratio := p.WidthM / p.LengthM
	if ratio < 0.5 || ratio > 2 {
		report.IsValid = false
		report.Messages = append(report.Messages,
			"Plot width to length ratio should be between 1:2 and 2:1")
	}

	if area := p.Area(); area < minPlotArea {
		report.IsValid = false
		report.Messages = append(report.Messages,
			fmt.Sprintf("Plot area %.1f sq.m is less than minimum required %.0f sq.m", area, minPlotArea))
	}

	return report
}

// SuggestRemedies derives the advisory remedy map for a plot. Room
// placement is recomputed through the same deterministic Compute rather
// than passed in, so remedies can never disagree with the descriptors a
// caller received.
//
// L-shaped plots always get all three shape remedies; each room whose
// facing deviates from its ideal gets its placement advisory; the three
// general energy-balance suggestions are always appended.
func (e *Engine) SuggestRemedies(p plan.PlotSpec) plan.RemedyMap {
	remedies := plan.RemedyMap{
		plan.RemedyPlotShape:     {},
		plan.RemedyRoomPlacement: {},
		plan.RemedyEnergyBalance: {},
	}

	if p.Shape == plan.LShaped {
		remedies[plan.RemedyPlotShape] = append(remedies[plan.RemedyPlotShape], shapeRemedies...)
	}

	for _, room := range e.Compute(p) {
		if room.Facing != idealDirections[room.Type] {
			remedies[plan.RemedyRoomPlacement] = append(
				remedies[plan.RemedyRoomPlacement], placementRemedies[room.Type])
		}
	}

	remedies[plan.RemedyEnergyBalance] = append(remedies[plan.RemedyEnergyBalance], energyRemedies...)

	return remedies
}

// IdealDirection returns the canonical facing for a template room type
// and whether the type participates in the quadrant template.
func IdealDirection(rt plan.RoomType) (plan.Direction, bool) {
	d, ok := idealDirections[rt]
	return d, ok
}

// ShapeRemedies returns the fixed remedies suggested for L-shaped plots.
func ShapeRemedies() []string {
	out := make([]string, len(shapeRemedies))
	copy(out, shapeRemedies)
	return out
}
