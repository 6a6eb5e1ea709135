package restorer

import "github.com/valerio/go-easel/easel/raster"

// live lists restorers holding a snapshot not yet written back or dropped,
// per backing buffer in creation order. Views such as display contexts are
// resolved to the drawable owning their memory so restorers taken through
// different views of one buffer see each other. Compositing is single
// threaded so no locking is done.
var live = map[raster.Drawable][]*Restorer{}

// maxViewDepth bounds the walk from a view to its backing buffer.
const maxViewDepth = 8

// baseOf returns the drawable owning the memory of d and the position of
// the top-left pixel of d inside it.
func baseOf(d raster.Drawable) (raster.Drawable, raster.Point) {
	var origin raster.Point
	for i := 0; i < maxViewDepth; i++ {
		view, ok := d.(raster.View)
		if !ok {
			break
		}
		base, offset := view.Base()
		if base == nil || base == d {
			break
		}
		d = base
		origin = raster.Point{X: origin.X + offset.X, Y: origin.Y + offset.Y}
	}
	return d, origin
}

func track(r *Restorer) {
	if r.target == nil || r.tracked {
		return
	}
	r.base, r.origin = baseOf(r.target)
	live[r.base] = append(live[r.base], r)
	r.tracked = true
}

func untrack(r *Restorer) {
	if !r.tracked {
		return
	}
	r.tracked = false

	stack := live[r.base]
	for i, other := range stack {
		if other != r {
			continue
		}
		stack = append(stack[:i], stack[i+1:]...)
		break
	}

	if len(stack) == 0 {
		delete(live, r.base)
		return
	}
	live[r.base] = stack
}

// area returns the saved rectangle in backing buffer coordinates.
func (r *Restorer) area() raster.Rect {
	return r.rect.Translate(r.origin.X, r.origin.Y)
}

// coveredByYounger reports whether a restorer created after r still holds
// a snapshot overlapping the area of r.
func coveredByYounger(r *Restorer) bool {
	younger := false
	for _, other := range live[r.base] {
		if other == r {
			younger = true
			continue
		}
		if younger && other.area().Overlaps(r.area()) {
			return true
		}
	}
	return false
}

// Live returns how many restorers hold a snapshot of the buffer behind
// target, whichever view they were taken through.
func Live(target raster.Drawable) int {
	if target == nil {
		return 0
	}
	base, _ := baseOf(target)
	return len(live[base])
}
