package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, Cell{Rune: FullBlock, Foreground: 3, Background: 3}, HalfBlock(3, 3))
	assert.Equal(t, Cell{Rune: UpperHalfBlock, Foreground: 1, Background: 7}, HalfBlock(1, 7))
}

func TestFitView(t *testing.T) {
	tests := []struct {
		name                string
		frameW, frameH      int
		cols, rows          int
		wantWidth, wantHigh int
	}{
		{"limited by rows", 640, 480, 200, 30, 80, 60},
		{"limited by columns", 640, 480, 40, 100, 40, 30},
		{"never enlarged", 20, 10, 200, 100, 20, 10},
		{"empty terminal", 640, 480, 0, 10, 0, 0},
		{"empty frame", 0, 480, 10, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitView(tt.frameW, tt.frameH, tt.cols, tt.rows)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHigh, h)
		})
	}
}

func TestSample(t *testing.T) {
	assert.Equal(t, 0, Sample(0, 80, 640))
	assert.Equal(t, 8, Sample(1, 80, 640))
	assert.Equal(t, 632, Sample(79, 80, 640))
	assert.Equal(t, 0, Sample(5, 0, 640))
}
