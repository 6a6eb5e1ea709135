package drm

import (
	"encoding/binary"

	"github.com/valerio/go-easel/easel/display"
	"github.com/valerio/go-easel/easel/raster"
)

const bytesPerPixel = 4

// placement says where the display lands on the screen mode: every display
// pixel becomes a scale x scale block starting at (x, y).
type placement struct {
	scale int
	x, y  int
}

// fit returns the largest integer scale showing a width x height frame on a
// modeWidth x modeHeight screen, centered. Frames larger than the mode are
// shown at scale 1, cropped by the mode.
func fit(width, height, modeWidth, modeHeight int) placement {
	if width <= 0 || height <= 0 {
		return placement{scale: 1}
	}

	scale := max(min(modeWidth/width, modeHeight/height), 1)
	return placement{
		scale: scale,
		x:     max((modeWidth-width*scale)/2, 0),
		y:     max((modeHeight-height*scale)/2, 0),
	}
}

// writeXRGB converts the roi area of frame into an XRGB8888 buffer of
// modeWidth x modeHeight pixels with the given pitch.
func writeXRGB(dst []byte, pitch, modeWidth, modeHeight int, frame raster.Drawable, roi raster.Rect, rgb []uint8, p placement) {
	roi = roi.Intersect(raster.Rect{Width: frame.Width(), Height: frame.Height()})
	if roi.Empty() {
		return
	}

	pixels, stride := frame.Pixels(), frame.Stride()
	for y := roi.Y; y < roi.Y+roi.Height; y++ {
		for x := roi.X; x < roi.X+roi.Width; x++ {
			value := display.PackXRGB(display.Color(rgb, pixels[y*stride+x]))

			for sy := 0; sy < p.scale; sy++ {
				outY := p.y + y*p.scale + sy
				if outY >= modeHeight {
					break
				}
				for sx := 0; sx < p.scale; sx++ {
					outX := p.x + x*p.scale + sx
					if outX >= modeWidth {
						break
					}
					offset := outY*pitch + outX*bytesPerPixel
					binary.LittleEndian.PutUint32(dst[offset:], value)
				}
			}
		}
	}
}
