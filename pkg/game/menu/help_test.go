package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	engineinput "moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/state"
)

func TestKeyboardKeysSkipsGamepad(t *testing.T) {
	keys := keyboardKeys(engineinput.GetBindingsByAction(), engineinput.ActionInteract)
	assert.Equal(t, []string{"e"}, keys)
}

func TestKeyboardKeysShortFirst(t *testing.T) {
	keys := keyboardKeys(engineinput.GetBindingsByAction(), engineinput.ActionQuit)
	assert.Equal(t, []string{"q", "escape"}, keys)
}

func TestFooterLineIdle(t *testing.T) {
	assert.Equal(t,
		"[wasd/↑↓←→] Move · [e] Interact · [r] Restart · [p] Export Report · [q/escape] Quit",
		FooterLine(state.ModeIdle))
}

func TestHelpPerMode(t *testing.T) {
	labels := func(mode state.Mode) []string {
		var out []string
		for _, e := range Help(mode) {
			out = append(out, e.Label)
		}
		return out
	}

	assert.Equal(t, []string{"Next", "Close", "Restart", "Quit"}, labels(state.ModeDialog))
	assert.Equal(t, []string{"Choose", "Restart", "Quit"}, labels(state.ModeScenario))
	assert.Equal(t, []string{"Restart", "Quit"}, labels(state.ModeFeedback))
	assert.Equal(t, []string{"Restart", "Export Report", "Quit"}, labels(state.ModeGameOver))
}

func TestHelpDialogKeys(t *testing.T) {
	h := Help(state.ModeDialog)
	assert.Equal(t, []string{"enter", "space"}, h[0].Keys)
	assert.Equal(t, []string{"tab"}, h[1].Keys)
}
