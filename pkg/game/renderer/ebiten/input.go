package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "moneymoves/pkg/engine/input"
)

// keyCode maps an Ebiten key to the shared binding code
type keyCode struct {
	key  ebiten.Key
	code string
}

var keyCodes = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyE, "e"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeyTab, "tab"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
	{ebiten.KeyDigit5, "5"},
	{ebiten.KeyDigit6, "6"},
	{ebiten.KeyDigit7, "7"},
	{ebiten.KeyDigit8, "8"},
	{ebiten.KeyDigit9, "9"},
	{ebiten.KeyNumpad1, "1"},
	{ebiten.KeyNumpad2, "2"},
	{ebiten.KeyNumpad3, "3"},
	{ebiten.KeyNumpad4, "4"},
	{ebiten.KeyNumpad5, "5"},
	{ebiten.KeyNumpad6, "6"},
	{ebiten.KeyNumpad7, "7"},
	{ebiten.KeyNumpad8, "8"},
	{ebiten.KeyNumpad9, "9"},
}

// isMovement reports whether an action is level triggered
func isMovement(a engineinput.Action) bool {
	switch a {
	case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth, engineinput.ActionMoveWest, engineinput.ActionMoveEast:
		return true
	}
	return false
}

func intentFor(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: device,
		Code:   code,
	}))
}

// collectControls folds device state into a snapshot. Movement is read as
// held, everything else as just pressed.
func collectControls(codes []keyCode, held, pressed func(ebiten.Key) bool) engineinput.Controls {
	c := engineinput.NoControls()
	for _, k := range codes {
		in := intentFor(engineinput.DeviceKeyboard, k.code)
		if in.Action == engineinput.ActionNone {
			continue
		}
		if isMovement(in.Action) {
			if held(k.key) {
				c.Apply(in)
			}
		} else if pressed(k.key) {
			c.Apply(in)
		}
	}
	return c
}

// controls builds this tick's snapshot from the keyboard and any gamepads
func (e *EbitenRenderer) controls() engineinput.Controls {
	c := collectControls(keyCodes, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	e.applyGamepadInput(&c)
	return c
}

// applyGamepadInput adds controller state to the snapshot.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
func (e *EbitenRenderer) applyGamepadInput(c *engineinput.Controls) {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)

		// D-pad: Up 11, Right 12, Down 13, Left 14
		if stickX < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton14) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_left"))
		}
		if stickX > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton12) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_right"))
		}
		if stickY < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton11) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_up"))
		}
		if stickY > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton13) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_down"))
		}

		// A / Cross: 0 talks, enters and advances
		// B / Circle: 1 quits
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton0) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_a"))
		}
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton1) {
			c.Apply(intentFor(engineinput.DeviceGamepad, "gamepad_b"))
		}
	}
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(32)
	}
}

func (e *EbitenRenderer) setTileSize(size float64) {
	size = clampTileSize(size)
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
}

func clampTileSize(size float64) float64 {
	if size < minTileSize {
		return minTileSize
	}
	if size > maxTileSize {
		return maxTileSize
	}
	return size
}
