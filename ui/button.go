package ui

import (
	"image/color"

	"github.com/OpticalFlyer/oaktree/geom"
)

const (
	idButton = "button"

	// DefaultClickSound is played when a button is activated.
	DefaultClickSound = "ui.button.click"
)

var _ Interactive = (*Button)(nil)
var _ MouseButtonListener = (*Button)(nil)

// ButtonFunc is a button callback.
type ButtonFunc func(g *GUI, b *Button)

// Button is a clickable control. A regular button is held while the left
// button stays down over it; a toggleable button flips its held state on
// every click.
type Button struct {
	InteractiveBase

	text       string
	textColor  color.Color
	toggleable bool
	clickSound string

	onClick   ButtonFunc
	whileHeld ButtonFunc
	onRelease ButtonFunc

	// left button state delivered by the listener registry
	mouseClicked bool
	mouseHeld    bool
	pressed      bool
	pressPos     geom.Vec

	buttonHeld bool
	mousePos   geom.Vec
}

// NewButton creates a 100x20 button showing text.
func NewButton(text string) *Button {
	b := &Button{
		text:       text,
		textColor:  color.White,
		clickSound: DefaultClickSound,
		onClick:    nopButton,
		whileHeld:  nopButton,
		onRelease:  nopButton,
	}
	b.initBase(b, idButton)
	b.SetSize(100, 20)
	return b
}

func nopButton(*GUI, *Button) {}

func buttonFunc(fn ButtonFunc) ButtonFunc {
	if fn == nil {
		return nopButton
	}
	return fn
}

func (b *Button) Text() string                  { return b.text }
func (b *Button) SetText(text string)           { b.text = text }
func (b *Button) SetTextColor(c color.Color)    { b.textColor = c }
func (b *Button) Toggleable() bool              { return b.toggleable }
func (b *Button) SetToggleable(toggleable bool) { b.toggleable = toggleable }
func (b *Button) ClickSound() string            { return b.clickSound }
func (b *Button) SetClickSound(sound string)    { b.clickSound = sound }

// Held reports whether the button is held, or toggled on.
func (b *Button) Held() bool { return b.buttonHeld }

// OnClick sets the callback run when the button becomes held.
func (b *Button) OnClick(fn ButtonFunc) { b.onClick = buttonFunc(fn) }

// WhileHeld sets the callback run on every frame the button is held.
func (b *Button) WhileHeld(fn ButtonFunc) { b.whileHeld = buttonFunc(fn) }

// OnRelease sets the callback run when the button stops being held.
func (b *Button) OnRelease(fn ButtonFunc) { b.onRelease = buttonFunc(fn) }

// Setup registers the button for mouse button events.
func (b *Button) Setup(g *GUI) {
	g.Listeners().AddMouseButton(b)
}

// Cleanup unregisters the button from mouse button events.
func (b *Button) Cleanup(g *GUI) {
	g.Listeners().RemoveMouseButton(b)
}

// OnMouseButton records the left button state for the next PreDraw.
func (b *Button) OnMouseButton(_ *GUI, e MouseButtonEvent) {
	if e.Button != MouseLeft {
		return
	}

	b.mouseClicked = e.JustPressed && !e.Released
	b.mouseHeld = !e.Released

	if b.mouseClicked {
		b.pressed = true
		b.pressPos = geom.Vec{X: e.X, Y: e.Y}
	} else if e.Released {
		b.pressed = false
	}
}

// Layout places the button in the area offered by its container.
func (b *Button) Layout(g *GUI, area geom.Rect) {
	b.place(g, area)
}

// PreDraw runs the press or toggle state machine and picks the style.
func (b *Button) PreDraw(g *GUI) {
	if !b.active(g) {
		return
	}

	b.mousePos = g.Mouse()
	captured := b.mouseWithin
	pressOnButton := b.pressed && b.trueArea.ContainsVec(b.pressPos)

	if b.toggleable {
		b.interactToggle(g, captured, pressOnButton)
	} else {
		b.interact(g, captured, pressOnButton)
	}

	state := StateBase
	switch {
	case b.buttonHeld:
		state = StateHeld
	case captured:
		state = StateHover
	}
	b.currentStyle = b.ResolveStyle(g.Theme(), state)
}

func (b *Button) interact(g *GUI, captured, pressOnButton bool) {
	if captured && b.mouseHeld {
		if !b.buttonHeld && pressOnButton {
			b.buttonHeld = true
			g.playSound(b.clickSound)
			b.onClick(g, b)
		}
		if b.buttonHeld {
			b.whileHeld(g, b)
		}
		return
	}

	if b.buttonHeld {
		b.buttonHeld = false
		b.onRelease(g, b)
	}
}

func (b *Button) interactToggle(g *GUI, captured, pressOnButton bool) {
	if captured && b.mouseClicked {
		b.buttonHeld = !b.buttonHeld
		g.playSound(b.clickSound)

		if b.buttonHeld {
			if pressOnButton {
				b.onClick(g, b)
			}
		} else {
			b.onRelease(g, b)
		}
	}

	if b.buttonHeld {
		b.whileHeld(g, b)
	}
}

// Draw paints the style and the centred text.
func (b *Button) Draw(g *GUI) {
	if !b.active(g) {
		return
	}
	b.drawStyle(g)

	if b.text == "" {
		return
	}
	r := g.Renderer()
	x := b.trueArea.X + b.trueArea.Width/2 - r.TextWidth(b.text)/2
	y := b.trueArea.Y + b.trueArea.Height/2 - r.FontHeight()/2
	r.DrawText(b.text, x, y, b.textColor)
}
