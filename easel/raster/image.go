package raster

// Image holds two layers in a single allocation:
//   - the image layer with a palette index per pixel, copied to a destination when drawn
//   - the transform layer telling how each pixel affects the destination (skip, shadow, ...)
type Image struct {
	width       int
	height      int
	scaleFactor int

	// singleLayer is set only for images used purely for final output. It is
	// never carried over by Clone.
	singleLayer bool

	data []uint8
}

// NewImage allocates a width x height image with a scale factor of 1.
// Non-positive sizes produce an empty image.
func NewImage(width, height int) *Image {
	return NewScaledImage(width, height, 1)
}

// NewScaledImage allocates an image which is meant to be drawn at the given
// integer scale factor.
func NewScaledImage(width, height, scaleFactor int) *Image {
	img := &Image{scaleFactor: 1}
	img.ResizeScaled(width, height, scaleFactor)
	return img
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

func (img *Image) ScaleFactor() int {
	return img.scaleFactor
}

func (img *Image) SingleLayer() bool {
	return img.singleLayer
}

func (img *Image) Empty() bool {
	return img.width == 0 || img.height == 0
}

func (img *Image) Stride() int {
	return img.width
}

// Pixels returns the image layer.
func (img *Image) Pixels() []uint8 {
	return img.data[:img.width*img.height]
}

// Transform returns the transform layer.
func (img *Image) Transform() []uint8 {
	return img.data[img.width*img.height:]
}

// Resize reallocates the image keeping its scale factor. Old content is lost.
func (img *Image) Resize(width, height int) {
	img.ResizeScaled(width, height, img.scaleFactor)
}

// ResizeScaled reallocates the image. Old content is not preserved: copy it
// first if it is needed.
func (img *Image) ResizeScaled(width, height, scaleFactor int) {
	if scaleFactor < 1 {
		scaleFactor = 1
	}
	img.scaleFactor = scaleFactor

	if width <= 0 || height <= 0 {
		img.Clear()
		return
	}

	img.width = width
	img.height = height
	img.data = make([]uint8, 2*width*height)
}

// Reset makes the image fully transparent keeping the allocation.
func (img *Image) Reset() {
	if img.Empty() {
		return
	}

	transform := img.Transform()
	for i := range transform {
		transform[i] = TransformSkip
	}
}

// Clear releases the pixel memory returning the image to the empty state.
func (img *Image) Clear() {
	img.width = 0
	img.height = 0
	img.data = nil
}

// Fill sets every pixel to value and makes the whole image opaque.
func (img *Image) Fill(value uint8) {
	if img.Empty() {
		return
	}

	pixels := img.Pixels()
	for i := range pixels {
		pixels[i] = value
	}
	clear(img.Transform())
}

// DisableTransformLayer marks the image as a final-output surface. Operators
// then ignore its transform layer. There is no way back.
func (img *Image) DisableTransformLayer() {
	img.singleLayer = true
}

// Clone returns a deep copy of the image. The single layer flag is not copied.
func (img *Image) Clone() *Image {
	out := &Image{
		width:       img.width,
		height:      img.height,
		scaleFactor: img.scaleFactor,
	}
	if img.data != nil {
		out.data = make([]uint8, len(img.data))
		copy(out.data, img.data)
	}
	return out
}

var _ Drawable = (*Image)(nil)
