package input

import "github.com/valerio/go-easel/easel/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Keys are named the way backends report them: single characters for
// printable keys, names such as "Escape" or "F12" otherwise.
var DefaultKeyMap = map[string]action.Action{
	"Escape": action.Quit,
	"q":      action.Quit,
	"Ctrl-C": action.Quit,

	"Space": action.PauseToggle,
	"p":     action.PauseToggle,
	"n":     action.StepFrame,

	"F12": action.Snapshot,
	"F11": action.FullscreenToggle,
	"c":   action.CursorToggle,
	"t":   action.PatternNext,

	"l": action.LogPanelToggle,
	"+": action.LogLevelIncrease,
	"=": action.LogLevelIncrease, // Alternative without shift
	"-": action.LogLevelDecrease,
	"_": action.LogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
