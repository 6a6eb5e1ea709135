// Package window draws the standard framed dialog window with its drop
// shadow and removes it again when the dialog closes.
package window

import (
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/restorer"
	"github.com/valerio/go-easel/easel/screen"
)

// BorderSize is the logical width of the frame around the active area.
const BorderSize = 16

// StandardWindow is a dialog frame drawn into a display context. The area
// it covers, shadow included, is saved on creation and restored by Close.
type StandardWindow struct {
	ctx *screen.Context

	activeArea raster.Rect
	windowArea raster.Rect
	borderSize int
	shadowSize int

	background *raster.Image
	restorer   *restorer.Restorer
}

// NewCentered opens a window whose active area is centered in ctx.
func NewCentered(ctx *screen.Context, width, height int, background raster.Drawable) *StandardWindow {
	return New(ctx, (ctx.Width()-width)/2, (ctx.Height()-height)/2, width, height, background)
}

// New opens a window with an active area of width x height at (x, y) in ctx
// coordinates. The background is stretched over the whole window.
func New(ctx *screen.Context, x, y, width, height int, background raster.Drawable) *StandardWindow {
	border := ctx.Scale(BorderSize)

	w := &StandardWindow{
		ctx:        ctx,
		activeArea: raster.Rect{X: x, Y: y, Width: width, Height: height},
		windowArea: raster.Rect{X: x - border, Y: y - border, Width: width + 2*border, Height: height + 2*border},
		borderSize: border,
		shadowSize: border,
	}

	w.restorer = restorer.New(ctx, w.windowArea.X-w.shadowSize, w.windowArea.Y,
		w.windowArea.Width+w.shadowSize, w.windowArea.Height+w.shadowSize)

	if background != nil {
		w.background = compose.Stretch(background, 0, 0, background.Width(), background.Height(),
			w.windowArea.Width, w.windowArea.Height)
	}

	w.Redraw()
	w.renderShadow()
	return w
}

// Redraw paints the background over the window area again.
func (w *StandardWindow) Redraw() {
	if w.background == nil {
		return
	}
	compose.BlitAt(w.background, w.ctx, w.windowArea.X, w.windowArea.Y, false)
}

// renderShadow darkens a strip left of and below the window, fading out
// toward its outer edge.
func (w *StandardWindow) renderShadow() {
	one, two := w.ctx.Scale(1), w.ctx.Scale(2)
	area, shadow := w.windowArea, w.shadowSize

	left := area.X - shadow
	top := area.Y + shadow
	height := area.Height - shadow
	bottom := area.Y + area.Height

	compose.ApplyTransform(w.ctx, left, top, one, height, raster.TransformShadow5)
	compose.ApplyTransform(w.ctx, left+one, top, one, height, raster.TransformShadow4)
	compose.ApplyTransform(w.ctx, left+two, top, shadow-two, height, raster.TransformShadow3)

	compose.ApplyTransform(w.ctx, left, bottom, area.Width, shadow-two, raster.TransformShadow3)
	compose.ApplyTransform(w.ctx, left, bottom+shadow-two, area.Width, one, raster.TransformShadow4)
	compose.ApplyTransform(w.ctx, left, bottom+shadow-one, area.Width, one, raster.TransformShadow5)
}

// ActiveArea returns the area inside the frame, in context coordinates.
func (w *StandardWindow) ActiveArea() raster.Rect {
	return w.activeArea
}

// WindowArea returns the area covered by the frame, shadow excluded.
func (w *StandardWindow) WindowArea() raster.Rect {
	return w.windowArea
}

// TotalArea returns everything the window touched, shadow included.
func (w *StandardWindow) TotalArea() raster.Rect {
	return w.restorer.Rect()
}

// Render pushes the window and its shadow to the screen.
func (w *StandardWindow) Render() error {
	d := w.ctx.Display()
	if d == nil || w.ctx.Empty() {
		return nil
	}
	return d.RenderRoi(w.ctx.TranslateRect(w.TotalArea()))
}

// Close puts back what was under the window and schedules that area for
// the next render.
func (w *StandardWindow) Close() {
	w.restorer.Close()
	if d := w.ctx.Display(); d != nil && !w.ctx.Empty() {
		d.UpdateNextRenderRoi(w.ctx.TranslateRect(w.TotalArea()))
	}
}
