package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/backend/drm"
	"github.com/valerio/go-easel/easel/backend/headless"
	"github.com/valerio/go-easel/easel/backend/sdl2"
	"github.com/valerio/go-easel/easel/backend/terminal"
	"github.com/valerio/go-easel/easel/demo"
	"github.com/valerio/go-easel/easel/display"
	"github.com/valerio/go-easel/easel/input"
	"github.com/valerio/go-easel/easel/input/action"
	"github.com/valerio/go-easel/easel/input/event"
	"github.com/valerio/go-easel/easel/screen"
	"github.com/valerio/go-easel/easel/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "easel"
	app.Description = "An 8-bit palette compositing engine demo"
	app.Usage = "easel [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Output backend: terminal, headless, sdl2 or drm",
			Value: "terminal",
		},
		cli.StringFlag{
			Name:  "scene",
			Usage: "Scene to run: demo or pattern",
			Value: "demo",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Logical display width",
			Value: display.DefaultWindowWidth,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Logical display height",
			Value: display.DefaultWindowHeight,
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Display scale factor (1-4)",
			Value: display.DefaultPixelScale,
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Frame rate of the scene",
			Value: timing.DefaultFPS,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run (required for headless, 0 = until quit otherwise)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "fullscreen",
			Usage: "Start in fullscreen mode when the backend supports it",
		},
		cli.BoolFlag{
			Name:  "software-cursor",
			Usage: "Composite the mouse cursor onto the display",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save PNG snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runScene

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running easel", "error", err)
		os.Exit(1)
	}
}

// options are the parsed command line settings.
type options struct {
	backend          string
	scene            string
	width, height    int
	scale            int
	fps              int
	frames           int
	fullscreen       bool
	softwareCursor   bool
	snapshotInterval int
	snapshotDir      string
	debug            bool
}

func parseOptions(c *cli.Context) (options, error) {
	opts := options{
		backend:          c.String("backend"),
		scene:            c.String("scene"),
		width:            c.Int("width"),
		height:           c.Int("height"),
		scale:            c.Int("scale"),
		fps:              c.Int("fps"),
		frames:           c.Int("frames"),
		fullscreen:       c.Bool("fullscreen"),
		softwareCursor:   c.Bool("software-cursor"),
		snapshotInterval: c.Int("snapshot-interval"),
		snapshotDir:      c.String("snapshot-dir"),
		debug:            c.Bool("debug"),
	}
	return opts, opts.validate()
}

func (o options) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", o.width, o.height)
	}
	if o.scale < 1 || o.scale > display.MaxPixelScale {
		return fmt.Errorf("scale must be between 1 and %d, got %d", display.MaxPixelScale, o.scale)
	}
	if o.backend == "headless" && o.frames <= 0 {
		return errors.New("headless mode requires --frames option with a positive value")
	}
	if o.scene != "" && o.scene != "demo" && o.scene != "pattern" {
		return fmt.Errorf("unknown scene %q", o.scene)
	}
	if o.frames < 0 {
		return errors.New("--frames must not be negative")
	}
	return nil
}

func runScene(c *cli.Context) error {
	opts, err := parseOptions(c)
	if err != nil {
		cli.ShowAppHelp(c)
		return err
	}

	if opts.debug || opts.backend == "headless" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	b, limiter, err := createBackend(opts)
	if err != nil {
		return err
	}

	_, err = run(b, limiter, opts)
	return err
}

// createBackend builds the backend selected on the command line along with
// the limiter pacing it.
func createBackend(opts options) (backend.Backend, timing.Limiter, error) {
	switch opts.backend {
	case "headless":
		snapshotConfig, err := headless.CreateSnapshotConfig(opts.snapshotInterval, opts.snapshotDir, "easel", opts.scale)
		if err != nil {
			return nil, nil, err
		}
		return headless.New(opts.frames, snapshotConfig), timing.NewNoOpLimiter(), nil
	case "terminal":
		// terminals redraw slowly, a ticker avoids busy waiting
		return terminal.New(), timing.NewTickerLimiter(opts.fps), nil
	case "sdl2":
		return sdl2.New(), timing.NewDeadlineLimiter(opts.fps), nil
	case "drm":
		return drm.New(), timing.NewDeadlineLimiter(opts.fps), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", opts.backend)
	}
}

// scene is what the frame loop animates.
type scene interface {
	DrawBackground()
	Step() error
	Close()
	Frame() int
}

// newScene builds the scene selected on the command line. The test pattern
// advances on the PatternNext action.
func newScene(d *screen.Display, manager *input.Manager, opts options) scene {
	if opts.scene != "pattern" {
		return demo.New(d)
	}

	p := demo.NewPattern(d, demo.Checkerboard)
	manager.On(action.PatternNext, event.Press, p.Next)
	return p
}

// summary is what a run produced.
type summary struct {
	frames    int
	dropped   int64
	snapshots []string
}

// debugMessage handles messages backends send to the frame loop.
func (s *summary) debugMessage(message string) {
	if path, ok := backend.SnapshotPath(message); ok {
		s.snapshots = append(s.snapshots, path)
		return
	}
	slog.Debug("Backend message", "message", message)
}

// run drives the selected scene on b until the backend asks to quit or the
// requested number of frames has been shown.
func run(b backend.Backend, limiter timing.Limiter, opts options) (summary, error) {
	var result summary
	quit, paused, step := false, false, false
	manager := input.NewManager()
	manager.On(action.PauseToggle, event.Press, func() {
		paused = !paused
		slog.Info("Pause toggled", "paused", paused)
	})
	manager.On(action.StepFrame, event.Press, func() {
		step = true
	})

	config := backend.Config{
		Title:          "easel",
		Width:          opts.width,
		Height:         opts.height,
		Scale:          opts.scale,
		VSync:          true,
		Fullscreen:     opts.fullscreen,
		NearestScaling: true,
		Callbacks: backend.Callbacks{
			OnQuit:         func() { quit = true },
			OnDebugMessage: result.debugMessage,
		},
		Input: manager,
	}

	if err := b.Init(config); err != nil {
		return result, fmt.Errorf("failed to initialize %s backend: %w", opts.backend, err)
	}

	d := screen.NewDisplay(b)
	screen.SetInstance(d)
	defer screen.SetInstance(nil)
	defer func() {
		if err := d.Release(); err != nil {
			slog.Error("Failed to release display", "error", err)
		}
	}()

	d.SetFullScreen(opts.fullscreen)
	if err := d.ResizeScaled(opts.width*opts.scale, opts.height*opts.scale, opts.scale); err != nil {
		return result, err
	}
	b.SetTitle(config.Title)

	cursor := d.Cursor()
	cursor.Update(demo.CursorImage(), 0, 0)
	cursor.SetPosition(d.Width()/2, d.Height()/2)
	cursor.EnableSoftwareEmulation(opts.softwareCursor)
	cursor.Show(opts.softwareCursor)
	manager.On(action.CursorToggle, event.Press, func() {
		cursor.EnableSoftwareEmulation(!cursor.IsSoftwareEmulation())
		cursor.Show(cursor.IsSoftwareEmulation())
	})

	current := newScene(d, manager, opts)
	defer current.Close()

	current.DrawBackground()
	if err := d.Render(); err != nil {
		return result, err
	}

	limiter.Reset()
	for frame := 0; !quit && (opts.frames == 0 || frame < opts.frames); frame++ {
		if !paused || step {
			step = false
			if err := current.Step(); err != nil {
				return result, err
			}
		}
		if err := b.Update(); err != nil {
			return result, err
		}
		limiter.WaitForNextFrame()
	}

	result.frames = current.Frame()
	if counter, ok := limiter.(interface{ Dropped() int64 }); ok {
		result.dropped = counter.Dropped()
	}
	slog.Info("Scene finished", "scene", opts.scene, "frames", result.frames,
		"dropped", result.dropped, "snapshots", len(result.snapshots))
	return result, nil
}
