package layout

// Standards holds the fixed construction dimensions (NBC-style values)
// used by both the layout and rendering engines. They are process-wide
// constants in spirit, but carried as a value so tests can vary them
// without touching global state.
type Standards struct {
	// WallThickness is the cavity wall thickness in meters (230 mm).
	WallThickness float64

	// CorridorWidth is the circulation gap between room quadrants in meters.
	CorridorWidth float64

	// DoorWidth is the standard door opening width in meters.
	DoorWidth float64

	// WindowWidth and WindowHeight are the standard window opening size in meters.
	WindowWidth  float64
	WindowHeight float64

	// RoomHeight is the standard floor-to-ceiling height in meters.
	// Only reported in the drawing legend; nothing is placed vertically.
	RoomHeight float64
}

// DefaultStandards returns the standard values every plan is generated
// with unless a caller overrides them.
func DefaultStandards() Standards {
	return Standards{
		WallThickness: 0.23,
		CorridorWidth: 1.2,
		DoorWidth:     1.0,
		WindowWidth:   1.2,
		WindowHeight:  1.5,
		RoomHeight:    3.0,
	}
}
