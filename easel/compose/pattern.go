package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

// ExtractCommonPattern keeps the pixels that are identical in every input
// image and makes the rest transparent. All images must have the same size.
func ExtractCommonPattern(images []*raster.Image) *raster.Image {
	if len(images) == 0 || images[0] == nil || images[0].Empty() {
		return raster.NewImage(0, 0)
	}

	first := images[0]
	for _, img := range images[1:] {
		if !check.Precondition(img != nil && img.Width() == first.Width() && img.Height() == first.Height(),
			"common pattern needs images of the same size") {
			return raster.NewImage(0, 0)
		}
	}

	out := raster.NewScaledImage(first.Width(), first.Height(), first.ScaleFactor())
	CopyRegion(first, 0, 0, out, 0, 0, first.Width(), first.Height())

	pixels, transform := out.Pixels(), out.Transform()
	for i := range pixels {
		for _, img := range images[1:] {
			code := codeAt(img, i)
			if code != transform[i] || (code == raster.TransformOpaque && img.Pixels()[i] != pixels[i]) {
				transform[i] = raster.TransformSkip
				break
			}
		}
	}
	return out
}

// FilterOnePixelNoise removes isolated single pixel specks: an opaque pixel
// that differs from all of its opaque 4-neighbours takes the most common
// neighbour value, provided at least two neighbours agree. Ties go to the
// lowest value. Decisions are based on the input only.
func FilterOnePixelNoise(img *raster.Image) *raster.Image {
	if img == nil || img.Empty() {
		return raster.NewImage(0, 0)
	}

	out := img.Clone()
	width, height := img.Width(), img.Height()
	in := img.Pixels()
	outPixels := out.Pixels()

	opaque := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < width && y < height && codeAt(img, y*width+x) == raster.TransformOpaque
	}

	var neighbours [4]uint8
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !opaque(x, y) {
				continue
			}

			value := in[y*width+x]
			count := 0
			unique := true
			for _, p := range [4]raster.Point{{X: x - 1, Y: y}, {X: x + 1, Y: y}, {X: x, Y: y - 1}, {X: x, Y: y + 1}} {
				if !opaque(p.X, p.Y) {
					continue
				}
				n := in[p.Y*width+p.X]
				if n == value {
					unique = false
					break
				}
				neighbours[count] = n
				count++
			}
			if !unique || count < 2 {
				continue
			}

			if best, ok := majority(neighbours[:count]); ok {
				outPixels[y*width+x] = best
			}
		}
	}
	return out
}

// majority returns the most frequent value when it appears at least twice.
func majority(values []uint8) (uint8, bool) {
	best, bestCount := uint8(0), 0
	for _, v := range values {
		n := 0
		for _, other := range values {
			if other == v {
				n++
			}
		}
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best, bestCount >= 2
}

// CreateBlurredImage box-blurs the opaque pixels of img in RGB space. Only
// opaque neighbours contribute; the transform layer is kept as is.
func CreateBlurredImage(img *raster.Image, radius int) *raster.Image {
	if img == nil || img.Empty() {
		return raster.NewImage(0, 0)
	}

	out := img.Clone()
	if radius <= 0 {
		return out
	}

	width, height := img.Width(), img.Height()
	in := img.Pixels()
	outPixels := out.Pixels()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if codeAt(img, y*width+x) != raster.TransformOpaque {
				continue
			}

			var r, g, b, n int
			for sy := max(0, y-radius); sy <= min(height-1, y+radius); sy++ {
				for sx := max(0, x-radius); sx <= min(width-1, x+radius); sx++ {
					i := sy*width + sx
					if codeAt(img, i) != raster.TransformOpaque {
						continue
					}
					cr, cg, cb := palette.RGB(in[i])
					r += int(cr)
					g += int(cg)
					b += int(cb)
					n++
				}
			}
			outPixels[y*width+x] = palette.GetColorID(uint8(r/n), uint8(g/n), uint8(b/n))
		}
	}
	return out
}
