package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/raster"
)

// CreateContour returns a sprite of the same size as img where every
// transparent pixel touching the opaque footprint (4-neighbourhood) carries
// the given transform code. Everything else is transparent.
func CreateContour(img raster.Drawable, code uint8) *raster.Sprite {
	if !check.Precondition(code <= raster.MaxTransformValue, "transform value out of range", "value", code) {
		return raster.NewSprite(0, 0, 0, 0)
	}
	return contour(img, func(pixels, transform []uint8, i int) {
		transform[i] = code
	})
}

// CreateColorContour draws the same outline as CreateContour with opaque
// pixels of the given color.
func CreateColorContour(img raster.Drawable, colorID uint8) *raster.Sprite {
	return contour(img, func(pixels, transform []uint8, i int) {
		pixels[i] = colorID
		transform[i] = raster.TransformOpaque
	})
}

func contour(img raster.Drawable, mark func(pixels, transform []uint8, i int)) *raster.Sprite {
	if img == nil || img.Empty() {
		return raster.NewSprite(0, 0, 0, 0)
	}

	width, height, stride := img.Width(), img.Height(), img.Stride()
	out := raster.NewScaledSprite(width, height, 0, 0, img.ScaleFactor())
	out.Reset()
	if img.SingleLayer() {
		// nothing is transparent
		return out
	}

	opaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return img.Transform()[y*stride+x] == raster.TransformOpaque
	}

	transform := img.Transform()
	outPixels, outTransform := out.Pixels(), out.Transform()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if transform[y*stride+x] != raster.TransformSkip {
				continue
			}
			if opaque(x-1, y) || opaque(x+1, y) || opaque(x, y-1) || opaque(x, y+1) {
				mark(outPixels, outTransform, y*width+x)
			}
		}
	}
	return out
}
