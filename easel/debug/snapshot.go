package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-easel/easel/display"
	"github.com/valerio/go-easel/easel/raster"
	xdraw "golang.org/x/image/draw"
)

// TakeSnapshot saves the frame to the working directory and returns the file
// path, or an empty string when nothing was saved. Failures are logged.
func TakeSnapshot(frame raster.Drawable, rgb []uint8) string {
	if frame == nil || frame.Empty() {
		slog.Warn("No frame data available for snapshot")
		return ""
	}

	path, err := SaveFramePNGToDir(frame, rgb, "easel_snapshot", "", display.DefaultPixelScale)
	if err != nil {
		slog.Error("Failed to save snapshot", "error", err)
		return ""
	}
	return path
}

// FrameImage converts the image layer of frame to a paletted image using
// rgb, a table of 256 RGB triplets.
func FrameImage(frame raster.Drawable, rgb []uint8) *image.Paletted {
	pal := make(color.Palette, 256)
	for i := range pal {
		r, g, b := display.Color(rgb, uint8(i))
		pal[i] = color.RGBA{R: r, G: g, B: b, A: display.FullAlpha}
	}

	width, height := frame.Width(), frame.Height()
	img := image.NewPaletted(image.Rect(0, 0, width, height), pal)
	if frame.Empty() {
		return img
	}

	pixels, stride := frame.Pixels(), frame.Stride()
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width], pixels[y*stride:y*stride+width])
	}
	return img
}

// Upscale returns img enlarged by an integer factor with nearest neighbour
// sampling so individual pixels stay sharp.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SaveFramePNGToDir saves a frame as a timestamped PNG in directory, or in
// the working directory when directory is empty. It returns the file path.
func SaveFramePNGToDir(frame raster.Drawable, rgb []uint8, baseName, directory string, scale int) (string, error) {
	img := Upscale(FrameImage(frame, rgb), scale)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)

	// Determine output directory
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	size := img.Bounds().Size()
	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", size.X, size.Y), "format", "PNG")
	return filePath, nil
}
