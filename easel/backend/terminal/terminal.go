package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/backend/terminal/render"
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/debug"
	"github.com/valerio/go-easel/easel/display"
	"github.com/valerio/go-easel/easel/input"
	"github.com/valerio/go-easel/easel/input/action"
	"github.com/valerio/go-easel/easel/input/event"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
)

const (
	minTermWidth  = 40
	minTermHeight = 12
	logPanelWidth = 48
	logCapacity   = 100
)

// Backend implements the Backend interface using tcell for terminal rendering.
// The display is drawn with half-block cells, two pixels per cell, downsampled
// to fit the terminal.
type Backend struct {
	screen.BaseEngine

	screen    tcell.Screen
	running   atomic.Bool
	quitting  atomic.Bool
	done      chan struct{}
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	showLogs  bool
	config    backend.Config
	input     *input.Manager

	frame   *raster.Image
	palette []uint8
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
		showLogs: true,
		frame:    raster.NewImage(0, 0),
		palette:  palette.Default(),
	}
}

// newWithScreen creates a backend drawing to an existing tcell screen.
func newWithScreen(s tcell.Screen) *Backend {
	t := New()
	t.screen = s
	return t
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config

	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = s
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.running.Store(true)
	t.setupCallbacks()

	// Create log buffer and set up logging
	t.logBuffer = render.NewLogBuffer(logCapacity)
	handler := render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)
	slog.SetDefault(slog.New(handler))

	slog.Info("Terminal backend initialized")

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	// Set up signal handling for graceful shutdown
	t.done = make(chan struct{})
	go t.handleSignals(t.done)

	return nil
}

// Allocate keeps a copy of the frame sized like the display. The terminal
// itself cannot be resized from here.
func (t *Backend) Allocate(width, height int, fullscreen bool) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", width, height)
	}

	t.frame.Resize(width, height)
	return t.BaseEngine.Allocate(width, height, fullscreen)
}

// Render copies the roi area and redraws the terminal. Downsampling mixes
// rows from all over the frame so the whole view is redrawn every time.
func (t *Backend) Render(frame raster.Drawable, roi raster.Rect) error {
	if t.screen == nil {
		return fmt.Errorf("terminal not initialized")
	}
	if t.frame.Empty() {
		return fmt.Errorf("output not allocated")
	}

	compose.CopyRegion(frame, roi.X, roi.Y, t.frame, roi.X, roi.Y, roi.Width, roi.Height)

	t.draw()
	t.screen.Show()
	return nil
}

func (t *Backend) UpdatePalette(rgb []uint8) {
	t.palette = slices.Clone(rgb)
}

// AvailableResolutions reports the display sizes that fit the terminal
// without downsampling, plus the default one.
func (t *Backend) AvailableResolutions() []raster.Size {
	sizes := t.BaseEngine.AvailableResolutions()
	if t.screen == nil {
		return sizes
	}

	cols, rows := t.screen.Size()
	if cols > 0 && rows > 1 {
		sizes = append(sizes, raster.Size{Width: cols, Height: (rows - 1) * 2})
	}
	return sizes
}

func (t *Backend) Clear() {
	t.frame.Clear()
	if t.screen != nil {
		t.screen.Clear()
	}
}

func (t *Backend) SetTitle(title string) {
	t.BaseEngine.SetTitle(title)
	t.config.Title = title
}

// Update processes terminal events and forwards quit requests.
func (t *Backend) Update() error {
	if t.screen == nil {
		return nil
	}

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
			if !t.frame.Empty() {
				t.draw()
				t.screen.Show()
			}
		}
	}

	if !t.running.Load() && !t.quitting.Swap(true) {
		t.config.Callbacks.Quit()
	}
	return nil
}

// Close restores the terminal.
func (t *Backend) Close() error {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
		t.screen = nil
	}
	return nil
}

// handleSignals stops the frame loop on a termination signal. It returns
// when done is closed.
func (t *Backend) handleSignals(done <-chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(signals)

	select {
	case <-signals:
		t.running.Store(false)
	case <-done:
	}
}

// setupCallbacks registers the actions the terminal handles itself.
func (t *Backend) setupCallbacks() {
	t.input = t.config.Input
	if t.input == nil {
		t.input = input.NewManager()
	}

	t.input.On(action.Quit, event.Press, func() {
		t.running.Store(false)
	})
	t.input.On(action.Snapshot, event.Press, func() {
		t.config.Callbacks.SnapshotSaved(debug.TakeSnapshot(t.frame, t.palette))
	})
	t.input.On(action.LogPanelToggle, event.Press, func() {
		t.showLogs = !t.showLogs
		t.screen.Clear()
	})
	t.input.On(action.LogLevelIncrease, event.Press, func() {
		t.changeLogLevel(1)
	})
	t.input.On(action.LogLevelDecrease, event.Press, func() {
		t.changeLogLevel(-1)
	})
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEscape: "Escape",
	tcell.KeyCtrlC:  "Ctrl-C",
	tcell.KeyF11:    "F11",
	tcell.KeyF12:    "F12",
}

// keyName returns the default mapping name of a key event.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "Space"
		}
		return string(ev.Rune())
	}
	return tcellKeyNameMap[ev.Key()]
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	name := keyName(ev)
	if name == "" {
		return
	}
	if !t.input.TriggerKey(name, event.Press) {
		slog.Debug("Key ignored", "key", name)
	}
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) draw() {
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	frameCols := termWidth
	if t.showLogs && termWidth >= minTermWidth+logPanelWidth {
		frameCols = termWidth - logPanelWidth - 1
	}

	t.drawBorders(termWidth, termHeight, frameCols)
	t.drawFrame(frameCols, termHeight-2)

	if frameCols < termWidth {
		t.drawLogs(frameCols+1, 1, termWidth-frameCols-1, termHeight)
	}
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	if dividerX < termWidth {
		for y := 0; y < termHeight; y++ {
			t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
		}
		levelStr := "INFO"
		switch t.logLevel {
		case slog.LevelDebug:
			levelStr = "DEBUG"
		case slog.LevelWarn:
			levelStr = "WARN"
		case slog.LevelError:
			levelStr = "ERROR"
		}
		t.drawText(dividerX+2, 0, termWidth-dividerX-2, fmt.Sprintf(" Logs [%s] (-/+ filter) ", levelStr), titleStyle)
	}

	title := t.config.Title
	if title == "" {
		title = "easel"
	}
	t.drawText(1, 0, dividerX-1, fmt.Sprintf(" %s %dx%d ", title, t.frame.Width(), t.frame.Height()), titleStyle)

	helpText := " ESC/q=exit SPACE=pause N=step T=pattern F12=snapshot L=logs +/-=log filter "
	t.drawText(0, termHeight-1, termWidth, helpText, borderStyle)
}

// drawFrame draws the frame in cols x rows cells starting below the title.
func (t *Backend) drawFrame(cols, rows int) {
	viewWidth, viewHeight := render.FitView(t.frame.Width(), t.frame.Height(), cols, rows)
	pixels, stride := t.frame.Pixels(), t.frame.Stride()

	at := func(x, y int) uint8 {
		fx := render.Sample(x, viewWidth, t.frame.Width())
		fy := render.Sample(y, viewHeight, t.frame.Height())
		return pixels[fy*stride+fx]
	}

	for y := 0; y < viewHeight; y += 2 {
		for x := 0; x < viewWidth; x++ {
			top := at(x, y)
			bottom := top
			if y+1 < viewHeight {
				bottom = at(x, y+1)
			}

			cell := render.HalfBlock(top, bottom)
			style := tcell.StyleDefault.Foreground(t.color(cell.Foreground)).Background(t.color(cell.Background))
			t.screen.SetContent(x, y/2+1, cell.Rune, nil, style)
		}
	}
}

func (t *Backend) color(id uint8) tcell.Color {
	r, g, b := display.Color(t.palette, id)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	if width <= 0 || startY >= termHeight {
		return
	}

	availableHeight := termHeight - startY - 1
	if availableHeight <= 0 {
		return
	}

	logs := t.logBuffer.Recent(availableHeight, t.logLevel)

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, logEntry := range logs {
		style := infoStyle
		switch logEntry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		logText := render.FormatLogEntry(logEntry)
		if len(logText) > width && width > 3 {
			logText = logText[:width-3] + "..."
		}
		t.drawText(startX, startY+i, width, logText, style)
	}
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			break
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
