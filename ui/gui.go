package ui

import "github.com/OpticalFlyer/oaktree/geom"

// GUI drives a control tree. It owns the root, the theme, the listener
// registry and the input state shared by every control during a frame.
type GUI struct {
	root      Control
	host      Host
	theme     Theme
	listeners Listeners

	frame   uint64
	mouse   geom.Vec
	delta   float32
	clicked [mouseButtonCount]bool
	held    [mouseButtonCount]bool
	chars   []rune

	// stacking order of the current and the previous frame, bottom first
	controls []Control
	previous []Control
	captured Control
	closed   bool
}

// New creates a GUI for root and applies the Vanilla theme.
func New(root Control, host Host) *GUI {
	g := &GUI{
		root: root,
		host: host.withDefaults(),
	}
	g.ApplyTheme(Vanilla())
	return g
}

// ApplyTheme replaces the theme and runs setup over the whole tree.
func (g *GUI) ApplyTheme(t Theme) {
	g.theme = t
	g.attach(g.root)
}

// attach binds c and its subtree to g, resolving default styles and
// running setup.
func (g *GUI) attach(c Control) {
	if g.closed {
		return
	}
	walk(c, func(c Control) {
		b := c.Node()
		b.gui = g
		b.defaultStyle = b.ResolveStyle(g.theme, StateBase)
		if s, ok := c.(Setupper); ok {
			s.Setup(g)
		}
	})
}

// Frame runs one frame: input edges, layout, capture, interaction, drawing.
func (g *GUI) Frame(delta float32) {
	if g.closed {
		return
	}

	g.frame++
	g.delta = delta
	g.readInput()

	g.previous, g.controls = g.controls, g.previous[:0]
	width, height := g.host.Screen.Size()
	g.root.Layout(g, geom.Rect{Width: width, Height: height})

	g.capture()

	g.root.PreDraw(g)
	g.root.Draw(g)
	for _, c := range g.controls {
		if t, ok := c.(tooltipDrawer); ok {
			t.drawTooltip(g)
		}
	}

	area := g.root.Node().TrueArea()
	g.host.Screen.RequestSize(area.Width, area.Height)

	g.chars = g.chars[:0]
}

func (g *GUI) readInput() {
	x, y := g.host.Input.CursorPosition()
	g.mouse = geom.Vec{X: x, Y: y}

	for b := MouseLeft; b < mouseButtonCount; b++ {
		down := g.host.Input.IsMouseButtonDown(b)
		g.clicked[b] = down && !g.held[b]
		g.held[b] = down

		g.listeners.dispatchMouseButton(g, MouseButtonEvent{
			Button:      b,
			JustPressed: g.clicked[b],
			Released:    !down,
			X:           x,
			Y:           y,
		})
	}

	g.chars = g.host.Input.AppendTypedChars(g.chars[:0])
}

// capture marks the topmost control under the cursor as the only one the
// mouse is within. Controls laid out last are on top.
func (g *GUI) capture() {
	for _, c := range g.previous {
		if ic, ok := c.(Interactive); ok {
			ic.SetMouseWithin(false)
		}
	}

	g.captured = nil
	for i := len(g.controls) - 1; i >= 0; i-- {
		c := g.controls[i]
		hit := g.captured == nil && c.Node().trueArea.ContainsVec(g.mouse)
		if hit {
			g.captured = c
		}
		if ic, ok := c.(Interactive); ok {
			ic.SetMouseWithin(hit)
		}
	}
}

// Close runs cleanup over the tree and drops every listener. The GUI does
// nothing after it is closed.
func (g *GUI) Close() {
	if g.closed {
		return
	}
	g.closed = true

	detach(g.root)
	g.listeners.Clear()
	g.controls, g.previous, g.captured = nil, nil, nil
}

func (g *GUI) Closed() bool           { return g.closed }
func (g *GUI) Root() Control          { return g.root }
func (g *GUI) Theme() Theme           { return g.theme }
func (g *GUI) Listeners() *Listeners  { return &g.listeners }
func (g *GUI) Renderer() Renderer     { return g.host.Renderer }
func (g *GUI) Mouse() geom.Vec        { return g.mouse }
func (g *GUI) Delta() float32         { return g.delta }
func (g *GUI) ScreenHandler() any     { return g.host.Handlers.ScreenHandler() }
func (g *GUI) Captured() Control      { return g.captured }
func (g *GUI) TypedChars() []rune     { return g.chars }
func (g *GUI) playSound(sound string) { g.host.Sound.Play(sound) }

// MouseButtonHeld reports whether b is down this frame.
func (g *GUI) MouseButtonHeld(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && g.held[b]
}

// MouseButtonJustClicked reports whether b went down this frame.
func (g *GUI) MouseButtonJustClicked(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && g.clicked[b]
}

// LastChar returns the last character typed this frame.
func (g *GUI) LastChar() (rune, bool) {
	if len(g.chars) == 0 {
		return 0, false
	}
	return g.chars[len(g.chars)-1], true
}

// ZIndex returns the controls laid out this frame in stacking order,
// bottom first.
func (g *GUI) ZIndex() []Control {
	return append([]Control(nil), g.controls...)
}

// IsInteractingWithUI reports whether the cursor is over a control other
// than the root, so the host can keep the click for itself otherwise.
func (g *GUI) IsInteractingWithUI() bool {
	return g.captured != nil && g.captured != g.root
}
