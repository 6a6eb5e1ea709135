package demo

import (
	"log/slog"

	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
)

// PatternKind selects what a PatternScene draws.
type PatternKind int

const (
	Checkerboard PatternKind = iota
	Gradient
	Stripes
	Diagonal

	patternCount
)

const (
	checkerboardTileSize = 8
	stripeWidth          = 4
	diagonalTileSize     = 8

	// AnimationPeriod is the number of frames between animation steps of
	// the stripes and diagonal patterns.
	AnimationPeriod = 30

	stripeSpeed   = 2
	diagonalSpeed = 4
)

var patternNames = [patternCount]string{"checkerboard", "gradient", "stripes", "diagonal"}

func (k PatternKind) String() string {
	if k < 0 || k >= patternCount {
		return "unknown"
	}
	return patternNames[k]
}

// PatternScene fills the display with a test pattern to check a backend
// end to end. Sizes are logical and grow with the display scale factor.
type PatternScene struct {
	display *screen.Display
	kind    PatternKind
	frame   int
	phase   int
}

// NewPattern prepares a pattern scene for d, which must be allocated.
func NewPattern(d *screen.Display, kind PatternKind) *PatternScene {
	d.Subscribe(nil, nil)
	return &PatternScene{display: d, kind: kind}
}

// Kind returns the pattern being shown.
func (p *PatternScene) Kind() PatternKind {
	return p.kind
}

// Next switches to the following pattern and redraws the whole screen.
func (p *PatternScene) Next() {
	p.kind = (p.kind + 1) % patternCount
	p.phase = 0
	slog.Info("Test pattern changed", "pattern", p.kind)
	p.DrawBackground()
}

// DrawBackground paints the current pattern and schedules a full push.
func (p *PatternScene) DrawBackground() {
	d := p.display
	scale := max(d.ScaleFactor(), 1)
	width, height := d.Width(), d.Height()

	switch p.kind {
	case Checkerboard:
		p.fill(func(x, y int) uint8 {
			if (x/checkerboardTileSize+y/checkerboardTileSize)%2 == 0 {
				return palette.White
			}
			return palette.Black
		})
	case Gradient:
		columns := width / scale
		for x := 0; x < columns; x++ {
			v := uint8(x * 255 / max(columns-1, 1))
			compose.Fill(d, x*scale, 0, scale, height, palette.GetColorID(v, v, v))
		}
	case Stripes:
		dark := palette.GetColorID(85, 85, 85)
		p.fill(func(x, _ int) uint8 {
			if ((x+p.phase*stripeSpeed)/stripeWidth)%2 == 0 {
				return palette.White
			}
			return dark
		})
	case Diagonal:
		light, dark := palette.GetColorID(170, 170, 170), palette.GetColorID(85, 85, 85)
		p.fill(func(x, y int) uint8 {
			if ((x+y+p.phase*diagonalSpeed)/diagonalTileSize)%2 == 0 {
				return light
			}
			return dark
		})
	}

	d.UpdateNextRenderRoi(raster.Rect{Width: width, Height: height})
}

// fill paints every logical pixel with the color returned by colorAt.
func (p *PatternScene) fill(colorAt func(x, y int) uint8) {
	d := p.display
	scale := max(d.ScaleFactor(), 1)
	for y := 0; y*scale < d.Height(); y++ {
		for x := 0; x*scale < d.Width(); x++ {
			compose.Fill(d, x*scale, y*scale, scale, scale, colorAt(x, y))
		}
	}
}

// Step advances the animation by one frame and pushes what changed.
func (p *PatternScene) Step() error {
	p.frame++
	if p.frame%AnimationPeriod == 0 && (p.kind == Stripes || p.kind == Diagonal) {
		p.phase++
		p.DrawBackground()
	}
	return p.display.RenderRoi(raster.Rect{})
}

// Close detaches the scene from the display.
func (p *PatternScene) Close() {
	p.display.Subscribe(nil, nil)
}

// Frame returns the number of steps taken.
func (p *PatternScene) Frame() int {
	return p.frame
}
