package input

// Controls is the per-frame input snapshot handed to the game.
// Direction fields are level-triggered (held this frame); the rest are
// edge-triggered (pressed this frame).
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Interact bool
	Advance  bool
	Close    bool
	Restart  bool
	Export   bool
	Quit     bool

	// Choice is the zero based scenario choice pressed this frame, or -1
	Choice int
}

// NoControls returns an empty snapshot
func NoControls() Controls {
	return Controls{Choice: -1}
}

// Apply folds an intent into the snapshot
func (c *Controls) Apply(in Intent) {
	switch in.Action {
	case ActionMoveNorth:
		c.Up = true
	case ActionMoveSouth:
		c.Down = true
	case ActionMoveWest:
		c.Left = true
	case ActionMoveEast:
		c.Right = true
	case ActionInteract:
		c.Interact = true
	case ActionAdvance:
		c.Advance = true
	case ActionClose:
		c.Close = true
	case ActionRestart:
		c.Restart = true
	case ActionExportReport:
		c.Export = true
	case ActionQuit:
		c.Quit = true
	default:
		if idx := in.ChoiceIndex(); idx >= 0 {
			c.Choice = idx
		}
	}
}

// Axis resolves held directions into a unit step per axis.
// Left wins over right and up wins over down; the two axes combine.
func (c Controls) Axis() (dx, dy int) {
	switch {
	case c.Left:
		dx = -1
	case c.Right:
		dx = 1
	}
	switch {
	case c.Up:
		dy = -1
	case c.Down:
		dy = 1
	}
	return dx, dy
}

