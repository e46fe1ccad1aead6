package ui

import (
	"fmt"

	"github.com/OpticalFlyer/oaktree/geom"
)

// Control is a node of the UI tree. A frame runs three passes over the
// tree: Layout positions every visible control and records it in the
// frame's stacking order, PreDraw lets controls react to input, and Draw
// paints them. Draw never changes interaction state.
type Control interface {
	Node() *Base
	Layout(g *GUI, area geom.Rect)
	PreDraw(g *GUI)
	Draw(g *GUI)
}

// Interactive is a Control that receives the per-frame capture result.
type Interactive interface {
	Control
	MouseWithin() bool
	SetMouseWithin(within bool)
}

// Container is a Control that owns children.
type Container interface {
	Control
	Children() []Control
}

// Setupper is implemented by controls that bind resources when they join a
// live GUI or a theme is applied.
type Setupper interface {
	Setup(g *GUI)
}

// Cleaner is implemented by controls that release resources when they are
// detached from a live GUI or the GUI closes.
type Cleaner interface {
	Cleanup(g *GUI)
}

type tooltipDrawer interface {
	drawTooltip(g *GUI)
}

// Base holds the layout record shared by all controls. Concrete controls
// embed it and call initBase from their constructor.
type Base struct {
	self   Control
	parent Control

	id      string
	pos     geom.Vec
	width   int
	height  int
	anchor  geom.Anchor
	expand  bool
	visible bool

	// per-instance overrides keyed by state, checked before the theme
	styles map[string]Style

	// set while the control belongs to a live GUI
	gui *GUI

	trueArea     geom.Rect
	frame        uint64
	currentStyle Style
	defaultStyle Style
}

func (b *Base) initBase(self Control, id string) {
	b.self = self
	b.id = id
	b.visible = true
}

func (b *Base) Node() *Base { return b }

func (b *Base) ID() string        { return b.id }
func (b *Base) SetID(id string)   { b.id = id }
func (b *Base) Parent() Control   { return b.parent }
func (b *Base) Visible() bool     { return b.visible }
func (b *Base) SetVisible(v bool) { b.visible = v }

// Position returns the local offset of the control.
func (b *Base) Position() geom.Vec { return b.pos }

func (b *Base) SetPosition(x, y int) { b.pos = geom.Vec{X: x, Y: y} }

// Size returns the requested size. Expanded controls take the size of
// their container instead; see Area.
func (b *Base) Size() (width, height int) { return b.width, b.height }

func (b *Base) SetSize(width, height int) {
	b.width = max(0, width)
	b.height = max(0, height)
}

func (b *Base) SetAnchor(a geom.Anchor) { b.anchor = a }
func (b *Base) Anchor() geom.Anchor     { return b.anchor }

// SetExpand makes the control fill whatever area its container offers.
func (b *Base) SetExpand(expand bool) { b.expand = expand }

// TrueArea is the screen-space rectangle computed by the last layout pass.
func (b *Base) TrueArea() geom.Rect { return b.trueArea }

// TruePosition is the screen-space top-left corner from the last layout.
func (b *Base) TruePosition() geom.Vec { return b.trueArea.Pos() }

// SetStyle overrides the style of this control for state. It takes
// priority over the theme. A nil style removes the override.
func (b *Base) SetStyle(state string, s Style) {
	state = normalizeState(state)
	if s == nil {
		delete(b.styles, state)
		return
	}
	if b.styles == nil {
		b.styles = make(map[string]Style)
	}
	b.styles[state] = s
}

// CurrentStyle is the style resolved during this frame's PreDraw.
func (b *Base) CurrentStyle() Style { return b.currentStyle }

// DefaultStyle is the base style resolved when the theme was applied.
func (b *Base) DefaultStyle() Style { return b.defaultStyle }

// ResolveStyle looks up the style for state: the instance override first,
// then the theme entry for this control's id, then the same two lookups for
// the base state. It returns nil when nothing matches.
func (b *Base) ResolveStyle(t Theme, state string) Style {
	state = normalizeState(state)
	if s := b.lookupStyle(t, state); s != nil {
		return s
	}
	if state != StateBase {
		return b.lookupStyle(t, StateBase)
	}
	return nil
}

// lookupStyle resolves state without falling back to the base state.
func (b *Base) lookupStyle(t Theme, state string) Style {
	if s, ok := b.styles[state]; ok {
		return s
	}
	if s, ok := t.Style(b.id, state); ok {
		return s
	}
	return nil
}

// place computes the true area from the area offered by the container and
// records the control in the frame's stacking order. It reports false for
// hidden controls, which take no further part in the frame.
func (b *Base) place(g *GUI, area geom.Rect) bool {
	if !b.visible {
		return false
	}
	b.record(g, area)
	return true
}

// record lays the control out in area regardless of visibility.
func (b *Base) record(g *GUI, area geom.Rect) {
	if b.expand {
		b.trueArea = area
	} else {
		inContainer := b.anchor.Offset(area.Width, area.Height)
		inSelf := b.anchor.Offset(b.width, b.height)
		b.trueArea = geom.Rect{
			X:      area.X + b.pos.X + inContainer.X - inSelf.X,
			Y:      area.Y + b.pos.Y + inContainer.Y - inSelf.Y,
			Width:  b.width,
			Height: b.height,
		}
	}

	b.frame = g.frame
	g.controls = append(g.controls, b.self)
}

// active reports whether the control was laid out in the current frame.
func (b *Base) active(g *GUI) bool {
	return b.visible && b.frame == g.frame
}

func (b *Base) drawStyle(g *GUI) {
	if b.currentStyle != nil {
		b.currentStyle.Draw(g.host.Renderer, b.trueArea)
	}
}

// adopt makes parent the owner of child. A control belongs to at most one
// parent and may not contain itself. A child added to a tree that already
// belongs to a GUI is set up right away.
func adopt(parent, child Control) {
	if child == nil {
		panic("ui: nil child")
	}
	cn := child.Node()
	if cn.parent != nil {
		panic(fmt.Sprintf("ui: control %q already has a parent", cn.id))
	}
	for p := parent; p != nil; p = p.Node().parent {
		if p == child {
			panic(fmt.Sprintf("ui: adding %q would create a cycle", cn.id))
		}
	}
	cn.parent = parent
	if g := parent.Node().gui; g != nil {
		g.attach(child)
	}
}

// detach clears the parent of child and runs cleanup over its subtree.
func detach(child Control) {
	child.Node().parent = nil
	walk(child, func(c Control) {
		b := c.Node()
		if b.gui == nil {
			return
		}
		if cl, ok := c.(Cleaner); ok {
			cl.Cleanup(b.gui)
		}
		b.gui = nil
	})
}

// InteractiveBase is the Base of controls that take part in capture.
type InteractiveBase struct {
	Base
	mouseWithin bool
}

func (b *InteractiveBase) MouseWithin() bool          { return b.mouseWithin }
func (b *InteractiveBase) SetMouseWithin(within bool) { b.mouseWithin = within }

// relativeMouse returns the cursor position relative to the true position.
func (b *InteractiveBase) relativeMouse(g *GUI) geom.Vec {
	return g.Mouse().Sub(b.trueArea.Pos())
}

// walk visits c and all of its descendants in pre-order.
func walk(c Control, fn func(Control)) {
	fn(c)
	if cont, ok := c.(Container); ok {
		for _, child := range cont.Children() {
			walk(child, fn)
		}
	}
}
