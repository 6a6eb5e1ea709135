package display

// RGBA pixel format constants
const (
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	// RGBARShift is the bit shift for the red component in RGBA format
	RGBARShift = 24
	// RGBAGShift is the bit shift for the green component in RGBA format
	RGBAGShift = 16
	// RGBABShift is the bit shift for the blue component in RGBA format
	RGBABShift = 8
	// RGBAColorMask is the mask for extracting color components
	RGBAColorMask = 0xFF
)

// XRGB8888 layout used by linux framebuffers.
const (
	XRGBRShift = 16
	XRGBGShift = 8
	XRGBBShift = 0
)

// Backend scaling and window constants
const (
	// DefaultPixelScale is the default window scale for the logical screen
	DefaultPixelScale = 1
	// DefaultWindowWidth is the default logical screen width
	DefaultWindowWidth = 640
	// DefaultWindowHeight is the default logical screen height
	DefaultWindowHeight = 480
	// MaxPixelScale bounds the scale accepted from the command line
	MaxPixelScale = 4
)

// Color mapping constants
const (
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
	// PaletteEntryBytes is the size of one RGB palette entry
	PaletteEntryBytes = 3
)

// Color returns the RGB triplet of palette entry id in an 8 bit RGB table.
// Missing entries are black.
func Color(rgb []uint8, id uint8) (r, g, b uint8) {
	i := int(id) * PaletteEntryBytes
	if i+2 >= len(rgb) {
		return 0, 0, 0
	}
	return rgb[i], rgb[i+1], rgb[i+2]
}

// PackRGBA packs a color as 0xRRGGBBAA.
func PackRGBA(r, g, b uint8) uint32 {
	return uint32(r)<<RGBARShift | uint32(g)<<RGBAGShift | uint32(b)<<RGBABShift | FullAlpha
}

// PackXRGB packs a color as 0x00RRGGBB.
func PackXRGB(r, g, b uint8) uint32 {
	return uint32(r)<<XRGBRShift | uint32(g)<<XRGBGShift | uint32(b)<<XRGBBShift
}
