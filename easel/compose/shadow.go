package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/raster"
)

// Shadows are cast down and to the left: offset.X must not be positive and
// offset.Y must not be negative. Only opaque pixels cast a shadow.

func validShadow(in raster.Drawable, offset raster.Point, code uint8) bool {
	if in == nil || in.Empty() {
		return false
	}
	if !check.Precondition(offset.X <= 0 && offset.Y >= 0, "shadow offset must point down and left", "offset", offset) {
		return false
	}
	return check.Precondition(raster.IsShadow(code), "shadow code out of range", "code", code)
}

// MakeShadow returns only the silhouette cast by in. The result covers the
// sprite and its shadow and is positioned at (in.X()+offset.X, in.Y()), so
// drawing in at (-offset.X, 0) inside it lines both up.
func MakeShadow(in *raster.Sprite, offset raster.Point, code uint8) *raster.Sprite {
	if in == nil || !validShadow(in, offset, code) {
		return raster.NewSprite(0, 0, 0, 0)
	}

	width, height := in.Width(), in.Height()
	out := raster.NewScaledSprite(width-offset.X, height+offset.Y, in.X()+offset.X, in.Y(), in.ScaleFactor())
	out.Reset()

	inStride, outStride := in.Stride(), out.Stride()
	outTransform := out.Transform()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if codeAt(in, y*inStride+x) != raster.TransformOpaque {
				continue
			}
			outTransform[(y+offset.Y)*outStride+x] = code
		}
	}
	return out
}

// AddShadow returns a copy of in with its shadow attached. Invalid
// arguments give back a plain copy.
func AddShadow(in *raster.Sprite, offset raster.Point, code uint8) *raster.Sprite {
	if in == nil {
		return raster.NewSprite(0, 0, 0, 0)
	}
	if !validShadow(in, offset, code) {
		return in.Clone()
	}

	out := MakeShadow(in, offset, code)
	overlay(in, out, -offset.X, 0)
	return out
}

// UpdateShadow casts the shadow of img onto its own transparent pixels.
func UpdateShadow(img *raster.Image, offset raster.Point, code uint8) {
	if img == nil || img.SingleLayer() || !validShadow(img, offset, code) {
		return
	}

	width, height := img.Width(), img.Height()
	transform := img.Transform()
	for y := 0; y < height; y++ {
		targetY := y + offset.Y
		if targetY >= height {
			break
		}
		for x := 0; x < width; x++ {
			targetX := x + offset.X
			if targetX < 0 || transform[y*width+x] != raster.TransformOpaque {
				continue
			}
			if target := targetY*width + targetX; transform[target] == raster.TransformSkip {
				transform[target] = code
			}
		}
	}
}

// overlay replaces pixels of out with every non transparent pixel of in,
// keeping the transform code of in.
func overlay(in, out raster.Drawable, outX, outY int) {
	r, ok := clipRegion(in, out, region{outX: outX, outY: outY, width: in.Width(), height: in.Height()}, false)
	if !ok {
		return
	}

	inImage := in.Pixels()
	outImage, outTransform := out.Pixels(), out.Transform()
	for y := 0; y < r.height; y++ {
		inOffset := (r.inY+y)*in.Stride() + r.inX
		outOffset := (r.outY+y)*out.Stride() + r.outX
		for x := 0; x < r.width; x++ {
			code := codeAt(in, inOffset+x)
			if code == raster.TransformSkip {
				continue
			}
			outImage[outOffset+x] = inImage[inOffset+x]
			outTransform[outOffset+x] = code
		}
	}
}
