// Package menu lists the controls that apply in each mode, built from the
// live key bindings so help text never drifts from what the keys do.
package menu

import (
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since action names are looked up dynamically.
var dynamicGet = gotext.Get

// Entry is one line of help: a label and the keys that trigger it
type Entry struct {
	Label string
	Keys  []string
}

// codeNames are the display names for codes that aren't a single character
var codeNames = map[string]string{
	"arrow_up":    "↑",
	"arrow_down":  "↓",
	"arrow_left":  "←",
	"arrow_right": "→",
}

// keyboardKeys returns the keyboard codes bound to an action, display ready
func keyboardKeys(byAction map[engineinput.Action][]string, a engineinput.Action) []string {
	var keys []string
	for _, code := range byAction[a] {
		if strings.HasPrefix(code, "gamepad_") {
			continue
		}
		if name, ok := codeNames[code]; ok {
			code = name
		}
		keys = append(keys, code)
	}
	// single characters first, then named keys
	sort.SliceStable(keys, func(i, j int) bool {
		return len([]rune(keys[i])) < len([]rune(keys[j]))
	})
	return keys
}

func actionsFor(mode state.Mode) []engineinput.Action {
	switch mode {
	case state.ModeIdle:
		return []engineinput.Action{engineinput.ActionInteract, engineinput.ActionRestart, engineinput.ActionExportReport, engineinput.ActionQuit}
	case state.ModeDialog:
		return []engineinput.Action{engineinput.ActionAdvance, engineinput.ActionClose, engineinput.ActionRestart, engineinput.ActionQuit}
	case state.ModeGameOver:
		return []engineinput.Action{engineinput.ActionRestart, engineinput.ActionExportReport, engineinput.ActionQuit}
	default:
		return []engineinput.Action{engineinput.ActionRestart, engineinput.ActionQuit}
	}
}

// Help returns the controls for a mode in display order
func Help(mode state.Mode) []Entry {
	byAction := engineinput.GetBindingsByAction()
	var out []Entry

	switch mode {
	case state.ModeIdle:
		out = append(out, Entry{Label: gotext.Get("Move"), Keys: []string{"wasd", "↑↓←→"}})
	case state.ModeScenario:
		out = append(out, Entry{Label: gotext.Get("Choose"), Keys: []string{"1-9"}})
	}

	for _, a := range actionsFor(mode) {
		out = append(out, Entry{Label: dynamicGet(engineinput.ActionName(a)), Keys: keyboardKeys(byAction, a)})
	}
	return out
}

// FooterLine renders Help as one line, e.g. "[e] Interact · [r] Restart"
func FooterLine(mode state.Mode) string {
	entries := Help(mode)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, "["+strings.Join(e.Keys, "/")+"] "+e.Label)
	}
	return strings.Join(parts, " · ")
}
