package ui

import "github.com/OpticalFlyer/oaktree/geom"

const (
	idBox      = "box"
	idSplitBox = "split_box"
)

// Box holds a single child inset by margins.
type Box struct {
	Base

	child   Control
	margins margins

	// the halves of a SplitBox are laid out even when hidden
	pinned bool
}

var _ Container = (*Box)(nil)

// NewBox creates an empty box.
func NewBox() *Box {
	b := &Box{}
	b.initBase(b, idBox)
	return b
}

// SetChild replaces the child. The previous child is detached and cleaned
// up.
func (b *Box) SetChild(c Control) {
	if b.child != nil {
		detach(b.child)
	}
	b.child = nil
	if c != nil {
		adopt(b.self, c)
		b.child = c
	}
}

// Child returns the child, or nil.
func (b *Box) Child() Control { return b.child }

func (b *Box) Children() []Control {
	if b.child == nil {
		return nil
	}
	return []Control{b.child}
}

// SetMargin sets the same margin on every side. Negative values become 0.
func (b *Box) SetMargin(m int) { b.margins = uniform(m) }

// SetMargins sets each side separately. Negative values become 0.
func (b *Box) SetMargins(left, top, right, bottom int) {
	b.margins = margins{max(0, left), max(0, top), max(0, right), max(0, bottom)}
}

// Layout places the box and its child inside the margins.
func (b *Box) Layout(g *GUI, area geom.Rect) {
	if b.pinned {
		b.record(g, area)
	} else if !b.place(g, area) {
		return
	}
	if b.child != nil {
		b.child.Layout(g, b.margins.inner(b.trueArea))
	}
}

// laidOut reports whether the box takes part in the current frame.
func (b *Box) laidOut(g *GUI) bool {
	if b.pinned {
		return b.frame == g.frame
	}
	return b.active(g)
}

// PreDraw resolves the style and runs PreDraw on the child.
func (b *Box) PreDraw(g *GUI) {
	if !b.laidOut(g) {
		return
	}
	b.currentStyle = b.ResolveStyle(g.Theme(), StateBase)
	if b.child != nil {
		b.child.PreDraw(g)
	}
}

// Draw paints the box below its child.
func (b *Box) Draw(g *GUI) {
	if !b.laidOut(g) {
		return
	}
	b.drawStyle(g)
	if b.child != nil {
		b.child.Draw(g)
	}
}

// SplitBox divides its area between two boxes along one axis. The left
// box gets SplitPercent of the width; with Vertical set the split is along
// the height and left and right read as top and bottom. Both boxes are laid
// out on every frame, whatever their own visibility.
type SplitBox struct {
	Base

	left, right  *Box
	splitPercent float64
	vertical     bool
}

var _ Container = (*SplitBox)(nil)

// NewSplitBox creates a horizontal split at 50%.
func NewSplitBox() *SplitBox {
	s := &SplitBox{
		left:         NewBox(),
		right:        NewBox(),
		splitPercent: 50,
	}
	s.initBase(s, idSplitBox)
	for _, b := range []*Box{s.left, s.right} {
		b.SetExpand(true)
		b.pinned = true
	}
	adopt(s, s.left)
	adopt(s, s.right)
	return s
}

func (s *SplitBox) Left() *Box            { return s.left }
func (s *SplitBox) Right() *Box           { return s.right }
func (s *SplitBox) SetLeft(c Control)     { s.left.SetChild(c) }
func (s *SplitBox) SetRight(c Control)    { s.right.SetChild(c) }
func (s *SplitBox) Vertical() bool        { return s.vertical }
func (s *SplitBox) SetVertical(v bool)    { s.vertical = v }
func (s *SplitBox) Children() []Control   { return []Control{s.left, s.right} }
func (s *SplitBox) SplitPercent() float64 { return s.splitPercent }

// SetSplitPercent moves the split. Values outside [0, 100] are clamped.
func (s *SplitBox) SetSplitPercent(p float64) {
	s.splitPercent = geom.Clamp(p, 0, 100)
}

// split returns the areas of the two boxes for the given area.
func (s *SplitBox) split(area geom.Rect) (geom.Rect, geom.Rect) {
	first, second := area, area
	if s.vertical {
		h := int(s.splitPercent * float64(area.Height) / 100)
		first.Height = h
		second.Y += h
		second.Height = area.Height - h
	} else {
		w := int(s.splitPercent * float64(area.Width) / 100)
		first.Width = w
		second.X += w
		second.Width = area.Width - w
	}
	return first, second
}

// Layout places the split box and both of its halves.
func (s *SplitBox) Layout(g *GUI, area geom.Rect) {
	if !s.place(g, area) {
		return
	}
	first, second := s.split(s.trueArea)
	s.left.Layout(g, first)
	s.right.Layout(g, second)
}

// PreDraw resolves the style and runs PreDraw on both halves.
func (s *SplitBox) PreDraw(g *GUI) {
	if !s.active(g) {
		return
	}
	s.currentStyle = s.ResolveStyle(g.Theme(), StateBase)
	s.left.PreDraw(g)
	s.right.PreDraw(g)
}

// Draw paints the split box, then the left and right halves.
func (s *SplitBox) Draw(g *GUI) {
	if !s.active(g) {
		return
	}
	s.drawStyle(g)
	s.left.Draw(g)
	s.right.Draw(g)
}
