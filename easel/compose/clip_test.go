package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-easel/easel/raster"
)

func TestClipAxis(t *testing.T) {
	tests := []struct {
		name                      string
		inPos, outPos, length     int
		mirror                    bool
		wantIn, wantOut, wantSize int
	}{
		{name: "inside", inPos: 1, outPos: 2, length: 3, wantIn: 1, wantOut: 2, wantSize: 3},
		{name: "negative output", inPos: 0, outPos: -2, length: 5, wantIn: 2, wantOut: 0, wantSize: 3},
		{name: "output overflow", inPos: 0, outPos: 6, length: 5, wantIn: 0, wantOut: 6, wantSize: 2},
		{name: "negative input", inPos: -1, outPos: 0, length: 4, wantIn: 0, wantOut: 1, wantSize: 3},
		{name: "mirrored negative output", inPos: 0, outPos: -2, length: 5, mirror: true, wantIn: 0, wantOut: 0, wantSize: 3},
		{name: "mirrored output overflow", inPos: 0, outPos: 6, length: 5, mirror: true, wantIn: 3, wantOut: 6, wantSize: 2},
		{name: "mirrored negative input", inPos: -1, outPos: 0, length: 4, mirror: true, wantIn: 0, wantOut: 0, wantSize: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, size := clipAxis(tt.inPos, tt.outPos, tt.length, 10, 8, tt.mirror)
			assert.Equal(t, tt.wantIn, in)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestFitToRoi(t *testing.T) {
	in := raster.NewImage(10, 10)
	out := raster.NewImage(10, 10)

	inPos, outPos, size, ok := FitToRoi(in, raster.Point{}, out, raster.Point{X: -2, Y: 3},
		raster.Size{Width: 5, Height: 5}, raster.Rect{Width: 4, Height: 4})

	assert.True(t, ok)
	assert.Equal(t, raster.Point{X: 2, Y: 0}, inPos)
	assert.Equal(t, raster.Point{X: 0, Y: 3}, outPos)
	assert.Equal(t, raster.Size{Width: 3, Height: 1}, size)

	_, _, _, ok = FitToRoi(in, raster.Point{}, out, raster.Point{X: 5, Y: 5},
		raster.Size{Width: 2, Height: 2}, raster.Rect{Width: 4, Height: 4})
	assert.False(t, ok)

	_, _, _, ok = FitToRoi(in, raster.Point{X: -1}, out, raster.Point{}, raster.Size{Width: 2, Height: 2}, raster.Rect{Width: 4, Height: 4})
	assert.False(t, ok)
}
