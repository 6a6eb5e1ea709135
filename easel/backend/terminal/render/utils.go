package render

// Shared helpers for drawing palette indexed frames with half-block cells.

const (
	FullBlock      = '█'
	UpperHalfBlock = '▀'
)

// Cell is one terminal cell showing two vertically stacked pixels.
type Cell struct {
	Rune       rune
	Foreground uint8
	Background uint8
}

// HalfBlock returns the cell showing top over bottom. Equal pixels use a
// full block so the cell does not depend on the background color.
func HalfBlock(top, bottom uint8) Cell {
	if top == bottom {
		return Cell{Rune: FullBlock, Foreground: top, Background: bottom}
	}
	return Cell{Rune: UpperHalfBlock, Foreground: top, Background: bottom}
}

// FitView returns the largest pixel area that keeps the frame aspect ratio
// and fits in cols x rows half-block cells. Frames are never enlarged.
func FitView(frameWidth, frameHeight, cols, rows int) (width, height int) {
	if frameWidth <= 0 || frameHeight <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}

	maxHeight := rows * 2
	if frameWidth*maxHeight <= cols*frameHeight {
		height = maxHeight
		width = frameWidth * height / frameHeight
	} else {
		width = cols
		height = frameHeight * width / frameWidth
	}

	if width > frameWidth || height > frameHeight {
		return frameWidth, frameHeight
	}
	return max(width, 1), max(height, 1)
}

// Sample maps a view coordinate to the nearest frame coordinate.
func Sample(pos, viewSize, frameSize int) int {
	if viewSize <= 0 {
		return 0
	}
	return pos * frameSize / viewSize
}
