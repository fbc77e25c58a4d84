package layout

import "errors"

var (
	// ErrNoStart indicates a layout without an S tile.
	ErrNoStart = errors.New("layout: no start tile")
	// ErrNoGoal indicates a layout without a G tile.
	ErrNoGoal = errors.New("layout: no goal tile")
	// ErrDuplicateStart indicates more than one S tile.
	ErrDuplicateStart = errors.New("layout: more than one start tile")
	// ErrDuplicateGoal indicates more than one G tile.
	ErrDuplicateGoal = errors.New("layout: more than one goal tile")
	// ErrBadGlyph indicates a character outside the layout alphabet.
	ErrBadGlyph = errors.New("layout: unknown glyph")
	// ErrEndpointTile indicates an attempt to wall the start or goal tile.
	ErrEndpointTile = errors.New("layout: start and goal tiles cannot be walls")
	// ErrOccupied indicates moving start onto goal or goal onto start.
	ErrOccupied = errors.New("layout: tile is occupied by the other endpoint")
)
