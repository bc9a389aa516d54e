package clip

// Edges says which sides of a bar get an outline. A side is hidden when
// it was clipped or when it touches the baseline.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// BarRect is a clipped bar in data space.
type BarRect struct {
	Left, Right float64
	Bottom, Top float64
	Edges       Edges
}

// Bar clips the bar of a record at (x, y) standing on base. left and right
// are offsets from the record position along the bar's own axis, e.g. 0
// and the bar width for left-aligned bars. Horizontal bars extend along X
// from base to x at position y. The boolean is false when the bar is not
// visible at all.
func Bar(x, y, base, left, right float64, horizontal bool, b Bounds) (BarRect, bool) {
	var r BarRect
	if horizontal {
		r = BarRect{Left: base, Right: x, Bottom: y + left, Top: y + right}
		r.Edges = Edges{Left: false, Right: true, Top: true, Bottom: true}
		if r.Right < r.Left {
			r.Left, r.Right = r.Right, r.Left
			r.Edges.Left, r.Edges.Right = true, false
		}
	} else {
		r = BarRect{Left: x + left, Right: x + right, Bottom: base, Top: y}
		r.Edges = Edges{Left: true, Right: true, Top: true, Bottom: false}
		if r.Top < r.Bottom {
			r.Bottom, r.Top = r.Top, r.Bottom
			r.Edges.Bottom, r.Edges.Top = true, false
		}
	}

	if r.Right < b.XMin || r.Left > b.XMax || r.Top < b.YMin || r.Bottom > b.YMax {
		return BarRect{}, false
	}

	if r.Left < b.XMin {
		r.Left = b.XMin
		r.Edges.Left = false
	}
	if r.Right > b.XMax {
		r.Right = b.XMax
		r.Edges.Right = false
	}
	if r.Bottom < b.YMin {
		r.Bottom = b.YMin
		r.Edges.Bottom = false
	}
	if r.Top > b.YMax {
		r.Top = b.YMax
		r.Edges.Top = false
	}
	return r, true
}
