package raster

// Transform layer codes. Every compositing operator honours these values.
const (
	TransformOpaque uint8 = 0 // copy the image layer value
	TransformSkip   uint8 = 1 // fully transparent

	// Shadow levels darken whatever is already drawn below, 2 is the darkest.
	TransformShadow2 uint8 = 2
	TransformShadow3 uint8 = 3
	TransformShadow4 uint8 = 4
	TransformShadow5 uint8 = 5

	TransformLighten       uint8 = 6
	TransformLightenStrong uint8 = 7
	TransformTintRed       uint8 = 8
	TransformTintGreen     uint8 = 9
	TransformTintBlue      uint8 = 10
	TransformTintYellow    uint8 = 11
	TransformMirror        uint8 = 12
	TransformGray          uint8 = 13

	// MaxTransformValue is the largest code callers may store in a transform layer.
	MaxTransformValue uint8 = 13
)

// IsShadow reports whether the code is one of the shadow levels.
func IsShadow(code uint8) bool {
	return code >= TransformShadow2 && code <= TransformShadow5
}

// Drawable is the capability set shared by every pixel surface: standalone
// images, sprites, the display and display contexts. Layer slices begin at
// the view's top-left pixel; row y starts at y*Stride().
type Drawable interface {
	Width() int
	Height() int
	ScaleFactor() int

	// SingleLayer reports that only the image layer is meaningful.
	SingleLayer() bool
	Empty() bool

	Stride() int
	Pixels() []uint8
	Transform() []uint8
}

// View is implemented by drawables looking into the memory of another
// drawable. Base returns that drawable and the position of the view's
// top-left pixel inside it.
type View interface {
	Base() (Drawable, Point)
}
