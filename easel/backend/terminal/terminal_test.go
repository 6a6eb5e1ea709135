package terminal

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
)

func newSimulated(t *testing.T, cols, rows int, config backend.Config) (*Backend, tcell.SimulationScreen) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	sim := tcell.NewSimulationScreen("")
	b := newWithScreen(sim)
	require.NoError(t, b.Init(config))
	sim.SetSize(cols, rows)
	t.Cleanup(func() { b.Close() })
	return b, sim
}

func TestTerminalRender(t *testing.T) {
	b, sim := newSimulated(t, 40, 12, backend.Config{Title: "test"})
	b.showLogs = false

	d := screen.NewDisplay(b)
	require.NoError(t, d.Resize(8, 4))
	compose.Fill(d, 0, 0, 8, 2, palette.Red)
	compose.Fill(d, 0, 2, 8, 2, palette.Blue)
	compose.SetPixel(d, 0, 3, palette.Green)
	require.NoError(t, d.Render())

	red := tcell.NewRGBColor(255, 0, 0)
	blue := tcell.NewRGBColor(0, 0, 255)
	green := tcell.NewRGBColor(0, 255, 0)

	mainc, _, style, _ := sim.GetContent(1, 1)
	fg, _, _ := style.Decompose()
	assert.Equal(t, '█', mainc)
	assert.Equal(t, red, fg)

	mainc, _, style, _ = sim.GetContent(0, 2)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, '▀', mainc)
	assert.Equal(t, blue, fg)
	assert.Equal(t, green, bg)
}

func TestTerminalTooSmall(t *testing.T) {
	b, sim := newSimulated(t, 20, 5, backend.Config{})

	d := screen.NewDisplay(b)
	require.NoError(t, d.Resize(4, 4))
	require.NoError(t, d.Render())

	mainc, _, _, _ := sim.GetContent(0, 2)
	assert.Equal(t, 'T', mainc)
}

func TestTerminalQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quits := 0
			b, sim := newSimulated(t, 80, 24, backend.Config{
				Callbacks: backend.Callbacks{OnQuit: func() { quits++ }},
			})

			require.NoError(t, b.Update())
			assert.Equal(t, 0, quits)

			sim.InjectKey(tt.key, tt.ch, tcell.ModNone)
			require.NoError(t, b.Update())
			require.NoError(t, b.Update())
			assert.Equal(t, 1, quits, "quit is requested once")
		})
	}
}

func TestTerminalLogLevel(t *testing.T) {
	b, _ := newSimulated(t, 80, 24, backend.Config{})

	b.changeLogLevel(1)
	assert.Equal(t, slog.LevelDebug, b.logLevel)
	b.changeLogLevel(1)
	assert.Equal(t, slog.LevelDebug, b.logLevel)

	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	assert.Equal(t, slog.LevelError, b.logLevel)
}

func TestTerminalResolutions(t *testing.T) {
	b, _ := newSimulated(t, 100, 31, backend.Config{})
	assert.Contains(t, b.AvailableResolutions(), raster.Size{Width: 100, Height: 60})
}

func TestTerminalCloseStopsSignalHandler(t *testing.T) {
	b, _ := newSimulated(t, 40, 12, backend.Config{})
	done := b.done
	require.NotNil(t, done)

	require.NoError(t, b.Close())
	select {
	case <-done:
	default:
		t.Fatal("signal handler still waiting after close")
	}
	assert.Nil(t, b.done)
	assert.True(t, b.running.Load(), "closing is not a termination signal")

	// closing twice is harmless
	assert.NoError(t, b.Close())
}

func TestTerminalImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
}
