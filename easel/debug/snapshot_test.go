package debug

import (
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func TestFrameImage(t *testing.T) {
	frame := raster.NewImage(3, 2)
	frame.Fill(palette.Black)
	compose.SetPixel(frame, 1, 1, palette.Red)

	img := FrameImage(frame, palette.Default())

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, palette.Red, img.ColorIndexAt(1, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.At(1, 1))
	assert.Equal(t, color.RGBA{A: 255}, img.At(0, 0))
}

func TestUpscale(t *testing.T) {
	frame := raster.NewImage(2, 1)
	compose.SetPixel(frame, 0, 0, palette.White)
	compose.SetPixel(frame, 1, 0, palette.Blue)

	img := Upscale(FrameImage(frame, palette.Default()), 3)

	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.At(2, 2))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.At(3, 0))

	same := FrameImage(frame, palette.Default())
	assert.Same(t, same, Upscale(same, 1))
}

func TestSaveFramePNGToDir(t *testing.T) {
	frame := raster.NewImage(4, 4)
	frame.Fill(palette.Green)
	dir := t.TempDir()

	path, err := SaveFramePNGToDir(frame, palette.Default(), "test_frame", dir, 2)
	require.NoError(t, err)
	assert.FileExists(t, path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, []uint32{0, 0xFFFF, 0}, []uint32{r, g, b})

	_, err = SaveFramePNGToDir(frame, palette.Default(), "test_frame", dir+"/missing", 1)
	assert.Error(t, err)
}

func TestTakeSnapshotWithoutFrame(t *testing.T) {
	assert.Empty(t, TakeSnapshot(nil, palette.Default()))
	assert.Empty(t, TakeSnapshot(raster.NewImage(0, 0), palette.Default()))
}
