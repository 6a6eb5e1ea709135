package drm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name                 string
		width, height        int
		modeWidth, modeHeigh int
		want                 placement
	}{
		{"exact", 640, 480, 640, 480, placement{scale: 1}},
		{"doubled and centered", 640, 480, 1920, 1080, placement{scale: 2, x: 320, y: 60}},
		{"larger than mode", 800, 600, 640, 480, placement{scale: 1}},
		{"empty frame", 0, 0, 640, 480, placement{scale: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fit(tt.width, tt.height, tt.modeWidth, tt.modeHeigh))
		})
	}
}

func TestWriteXRGB(t *testing.T) {
	frame := raster.NewImage(2, 2)
	frame.Fill(palette.Black)
	compose.SetPixel(frame, 1, 0, palette.Red)

	const modeWidth, modeHeight = 6, 4
	pitch := modeWidth * bytesPerPixel
	dst := make([]byte, pitch*modeHeight)

	p := fit(2, 2, modeWidth, modeHeight)
	assert.Equal(t, placement{scale: 2, x: 1}, p)

	writeXRGB(dst, pitch, modeWidth, modeHeight, frame, raster.Rect{Width: 2, Height: 2}, palette.Default(), p)

	at := func(x, y int) uint32 {
		return binary.LittleEndian.Uint32(dst[y*pitch+x*bytesPerPixel:])
	}

	assert.Equal(t, uint32(0), at(0, 0), "left margin is untouched")
	assert.Equal(t, uint32(0), at(1, 0))
	assert.Equal(t, uint32(0x00FF0000), at(3, 0))
	assert.Equal(t, uint32(0x00FF0000), at(4, 1))
	assert.Equal(t, uint32(0), at(3, 2))
}
