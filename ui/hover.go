package ui

import "github.com/OpticalFlyer/oaktree/geom"

const idHover = "hover"

// HoverFunc is called with the GUI and the control that changed.
type HoverFunc func(g *GUI, h *Hover)

// Hover is an area that reports the cursor entering, staying in and
// leaving it.
type Hover struct {
	InteractiveBase

	mouseEnter   HoverFunc
	mouseExit    HoverFunc
	whileHovered HoverFunc

	// latched across frames so enter and exit fire once per transition
	currentlyWithin bool
}

var _ Interactive = (*Hover)(nil)

// NewHover creates a hover area with no-op callbacks.
func NewHover() *Hover {
	h := &Hover{
		mouseEnter:   func(*GUI, *Hover) {},
		mouseExit:    func(*GUI, *Hover) {},
		whileHovered: func(*GUI, *Hover) {},
	}
	h.initBase(h, idHover)
	return h
}

// SetHoverStyle overrides the style used while the cursor is inside.
func (h *Hover) SetHoverStyle(s Style) { h.SetStyle(StateHover, s) }

func (h *Hover) OnMouseEnter(fn HoverFunc)     { h.mouseEnter = orNop(fn) }
func (h *Hover) OnMouseExit(fn HoverFunc)      { h.mouseExit = orNop(fn) }
func (h *Hover) WhileMouseHovers(fn HoverFunc) { h.whileHovered = orNop(fn) }

// Hovered reports the latched hover state.
func (h *Hover) Hovered() bool { return h.currentlyWithin }

// Layout places the hover area in the area offered by its container.
func (h *Hover) Layout(g *GUI, area geom.Rect) {
	h.place(g, area)
}

// PreDraw fires the enter and exit edges and picks the style.
func (h *Hover) PreDraw(g *GUI) {
	if !h.active(g) {
		return
	}

	switch {
	case !h.currentlyWithin && h.mouseWithin:
		h.currentlyWithin = true
		h.mouseEnter(g, h)
	case h.currentlyWithin && !h.mouseWithin:
		h.currentlyWithin = false
		h.mouseExit(g, h)
	}

	if h.currentlyWithin {
		h.whileHovered(g, h)
		h.currentStyle = h.ResolveStyle(g.Theme(), StateHover)
	} else {
		h.currentStyle = h.ResolveStyle(g.Theme(), StateBase)
	}
}

// Draw paints the current style.
func (h *Hover) Draw(g *GUI) {
	if !h.active(g) {
		return
	}
	h.drawStyle(g)
}

func orNop(fn HoverFunc) HoverFunc {
	if fn == nil {
		return func(*GUI, *Hover) {}
	}
	return fn
}
