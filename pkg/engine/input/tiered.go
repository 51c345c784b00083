package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Interaction
	ActionInteract // Talk to an NPC or walk through a door (E)
	ActionAdvance  // Next dialog line (Space, Enter)
	ActionClose    // Skip the rest of a conversation (Tab)

	// Scenario choices
	ActionChoose1
	ActionChoose2
	ActionChoose3
	ActionChoose4
	ActionChoose5
	ActionChoose6
	ActionChoose7
	ActionChoose8
	ActionChoose9

	// Meta
	ActionRestart
	ActionExportReport
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// ChoiceIndex returns the zero based choice slot for a choose action, or -1
func (i Intent) ChoiceIndex() int {
	if i.Action >= ActionChoose1 && i.Action <= ActionChoose9 {
		return int(i.Action - ActionChoose1)
	}
	return -1
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten reports edges through inpututil and the terminal delivers one event
// per key press, so this stays a thin distinct type.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,

	"e":         ActionInteract,
	"gamepad_a": ActionInteract,

	"space": ActionAdvance,
	"enter": ActionAdvance,
	"tab":   ActionClose,

	"1": ActionChoose1,
	"2": ActionChoose2,
	"3": ActionChoose3,
	"4": ActionChoose4,
	"5": ActionChoose5,
	"6": ActionChoose6,
	"7": ActionChoose7,
	"8": ActionChoose8,
	"9": ActionChoose9,

	"r": ActionRestart,
	"p": ActionExportReport,

	"q":         ActionQuit,
	"escape":    ActionQuit,
	"gamepad_b": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionInteract:
		return "Interact"
	case ActionAdvance:
		return "Next"
	case ActionClose:
		return "Close"
	case ActionRestart:
		return "Restart"
	case ActionExportReport:
		return "Export Report"
	case ActionQuit:
		return "Quit"
	}
	if a >= ActionChoose1 && a <= ActionChoose9 {
		return "Choose " + string(rune('1'+int(a-ActionChoose1)))
	}
	return "None"
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
