package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/raster"
)

// DefaultActiveTransform is the lowest transform code counted as visible
// content by GetActiveROI: skip and shadow codes are below it.
const DefaultActiveTransform = raster.TransformLighten

// GetActiveROI returns the bounding box of pixels that are opaque or carry
// a transform code of at least minTransform. An image with no such pixel
// yields an empty rect.
func GetActiveROI(d raster.Drawable, minTransform uint8) raster.Rect {
	if d == nil || d.Empty() {
		return raster.Rect{}
	}

	width, height, stride := d.Width(), d.Height(), d.Stride()
	if d.SingleLayer() {
		return raster.Rect{Width: width, Height: height}
	}

	transform := d.Transform()
	minX, minY, maxX, maxY := width, height, -1, -1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			code := transform[y*stride+x]
			if code != raster.TransformOpaque && code < minTransform {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	if maxX < 0 {
		return raster.Rect{}
	}
	return raster.Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// Crop copies an area of d into a new sprite anchored where the area was.
// The area is clipped to d; nothing left gives an empty sprite.
func Crop(d raster.Drawable, x, y, width, height int) *raster.Sprite {
	roi, ok := clipRect(d, x, y, width, height)
	if !ok {
		return raster.NewSprite(0, 0, x, y)
	}

	out := raster.NewScaledSprite(roi.Width, roi.Height, roi.X, roi.Y, d.ScaleFactor())
	CopyRegion(d, roi.X, roi.Y, out, 0, 0, roi.Width, roi.Height)
	return out
}

// Tile is one grid cell worth of a divided image. Square holds the grid
// coordinates of the cell; the sprite position is relative to the top-left
// corner of the cell.
type Tile struct {
	Square raster.Point
	Sprite *raster.Sprite
}

// DivideImageBySquares cuts an image placed at offset into the cells of a
// grid of size x size squares. With flip the image is mirrored horizontally
// within the area it occupies. Fully transparent cells are dropped.
func DivideImageBySquares(offset raster.Point, img raster.Drawable, size int, flip bool) []Tile {
	if img == nil || img.Empty() {
		return nil
	}
	if !check.Precondition(size > 0, "square size must be positive", "size", size) {
		return nil
	}

	source := img
	if flip {
		source = Flip(img, true, false)
	}

	area := raster.Rect{X: offset.X, Y: offset.Y, Width: img.Width(), Height: img.Height()}
	firstX, firstY := floorDiv(area.X, size), floorDiv(area.Y, size)
	lastX, lastY := floorDiv(area.X+area.Width-1, size), floorDiv(area.Y+area.Height-1, size)

	var tiles []Tile
	for sy := firstY; sy <= lastY; sy++ {
		for sx := firstX; sx <= lastX; sx++ {
			cell := raster.Rect{X: sx * size, Y: sy * size, Width: size, Height: size}
			part := cell.Intersect(area)
			if part.Empty() {
				continue
			}

			sprite := Crop(source, part.X-area.X, part.Y-area.Y, part.Width, part.Height)
			if GetActiveROI(sprite, raster.TransformShadow2).Empty() {
				continue
			}
			sprite.SetPosition(part.X-cell.X, part.Y-cell.Y)
			tiles = append(tiles, Tile{Square: raster.Point{X: sx, Y: sy}, Sprite: sprite})
		}
	}
	return tiles
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
