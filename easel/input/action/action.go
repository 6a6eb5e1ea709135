package action

// Action represents a user command understood by the frame loop or a backend
type Action int

const (
	// Frame loop controls
	Quit Action = iota
	PauseToggle
	StepFrame

	// Output controls
	Snapshot
	FullscreenToggle
	CursorToggle
	PatternNext

	// Debug controls
	LogPanelToggle
	LogLevelIncrease
	LogLevelDecrease
)

var names = map[Action]string{
	Quit:             "quit",
	PauseToggle:      "pause",
	StepFrame:        "step frame",
	Snapshot:         "snapshot",
	FullscreenToggle: "fullscreen",
	CursorToggle:     "software cursor",
	PatternNext:      "next pattern",
	LogPanelToggle:   "log panel",
	LogLevelIncrease: "log level up",
	LogLevelDecrease: "log level down",
}

func (a Action) String() string {
	if name, ok := names[a]; ok {
		return name
	}
	return "unknown"
}
