package geom

// Vec is an integer screen-space vector.
type Vec struct {
	X, Y int
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Pos returns the top-left corner of r.
func (r Rect) Pos() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Size returns the extent of r as a vector.
func (r Rect) Size() Vec {
	return Vec{X: r.Width, Y: r.Height}
}

// Contains reports whether (x, y) lies within r. Edges are inclusive on
// both sides, so a 10 wide rect at 0 contains x = 10.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsVec is Contains for a Vec.
func (r Rect) ContainsVec(p Vec) bool {
	return r.Contains(p.X, p.Y)
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink returns r with the given margins removed from each side. The
// resulting width and height never go below zero.
func (r Rect) Shrink(left, top, right, bottom int) Rect {
	r.X += left
	r.Y += top
	r.Width = max(0, r.Width-left-right)
	r.Height = max(0, r.Height-top-bottom)
	return r
}

// Anchor names one of nine reference points of a rectangle.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// Offset returns the position of the anchor point within a width x height
// rectangle, relative to its top-left corner.
func (a Anchor) Offset(width, height int) Vec {
	var v Vec

	switch a {
	case TopCenter, Center, BottomCenter:
		v.X = width / 2
	case TopRight, CenterRight, BottomRight:
		v.X = width
	}

	switch a {
	case CenterLeft, Center, CenterRight:
		v.Y = height / 2
	case BottomLeft, BottomCenter, BottomRight:
		v.Y = height
	}

	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]. If hi < lo, lo wins.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
