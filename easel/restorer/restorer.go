// Package restorer saves an area of a drawable so that a transient overlay
// (a dialog, a tooltip, a dragged item) can be removed again by writing the
// saved pixels back.
//
// Restorers covering overlapping areas of the same buffer must be restored
// in reverse creation order, also when they were taken through different
// views of it. The package keeps track of pending snapshots and reports
// violations of that order.
package restorer

import (
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/raster"
)

// Restorer holds a snapshot of a rectangle of its target.
type Restorer struct {
	target raster.Drawable
	rect   raster.Rect

	snapshot *raster.Image

	// consumed is set once the snapshot has been written back or discarded.
	consumed bool
	closed   bool

	// tracking state: the buffer behind target and the target origin in it
	tracked bool
	base    raster.Drawable
	origin  raster.Point
}

// New saves the given area of target. The area is clipped to the target.
func New(target raster.Drawable, x, y, width, height int) *Restorer {
	r := &Restorer{target: target, snapshot: raster.NewImage(0, 0)}
	r.Update(x, y, width, height)
	return r
}

// NewFull saves the whole target.
func NewFull(target raster.Drawable) *Restorer {
	if target == nil {
		return New(nil, 0, 0, 0, 0)
	}
	return New(target, 0, 0, target.Width(), target.Height())
}

// Update replaces the snapshot with the current content of a new area. The
// restorer then counts as the newest one of its buffer.
func (r *Restorer) Update(x, y, width, height int) {
	untrack(r)
	defer track(r)

	r.consumed = false
	r.closed = false
	r.rect = raster.Rect{X: x, Y: y, Width: width, Height: height}

	if r.target == nil || r.target.Empty() {
		r.rect = raster.Rect{}
		r.snapshot.Clear()
		return
	}

	r.rect = r.rect.Intersect(raster.Rect{Width: r.target.Width(), Height: r.target.Height()})
	if r.rect.Empty() {
		r.snapshot.Clear()
		return
	}

	r.snapshot.ResizeScaled(r.rect.Width, r.rect.Height, r.target.ScaleFactor())
	compose.CopyRegion(r.target, r.rect.X, r.rect.Y, r.snapshot, 0, 0, r.rect.Width, r.rect.Height)
}

// Restore writes the snapshot back. Further calls do nothing until the next
// Update.
func (r *Restorer) Restore() {
	if r.consumed {
		return
	}
	r.consumed = true
	defer untrack(r)

	if r.rect.Empty() || r.snapshot.Empty() {
		return
	}

	check.Precondition(!coveredByYounger(r),
		"restoring an area still saved by a newer restorer",
		"rect", r.rect)

	compose.CopyRegion(r.snapshot, 0, 0, r.target, r.rect.X, r.rect.Y, r.rect.Width, r.rect.Height)
}

// Reset drops the snapshot without writing it back, for callers that have
// already redrawn the area by other means.
func (r *Restorer) Reset() {
	r.consumed = true
	untrack(r)
}

// Close restores the area unless Restore or Reset was called before. It is
// meant to be deferred right after New.
func (r *Restorer) Close() {
	if r.closed {
		return
	}
	r.Restore()
	r.closed = true
}

func (r *Restorer) X() int {
	return r.rect.X
}

func (r *Restorer) Y() int {
	return r.rect.Y
}

func (r *Restorer) Width() int {
	return r.rect.Width
}

func (r *Restorer) Height() int {
	return r.rect.Height
}

// Rect returns the saved area after clipping.
func (r *Restorer) Rect() raster.Rect {
	return r.rect
}

// Target returns the drawable the restorer writes back to.
func (r *Restorer) Target() raster.Drawable {
	return r.target
}
