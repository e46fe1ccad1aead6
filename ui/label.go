package ui

import (
	"image/color"

	"github.com/OpticalFlyer/oaktree/geom"
)

const (
	idLabel   = "label"
	idTooltip = "tooltip"

	labelPadding = 3
)

// Label shows one or more lines of text. With FitText set it sizes itself
// to its text on every layout.
type Label struct {
	Base

	lines   []string
	color   color.Color
	fitText bool
}

// NewLabel creates a white label with the given lines.
func NewLabel(lines ...string) *Label {
	l := &Label{
		lines: lines,
		color: color.White,
	}
	l.initBase(l, idLabel)
	return l
}

func (l *Label) Lines() []string            { return l.lines }
func (l *Label) SetText(lines ...string)    { l.lines = lines }
func (l *Label) SetTextColor(c color.Color) { l.color = c }
func (l *Label) SetFitText(fit bool)        { l.fitText = fit }

func (l *Label) fit(r Renderer) {
	width := 0
	for _, line := range l.lines {
		width = max(width, r.TextWidth(line))
	}
	l.SetSize(width+2*labelPadding, len(l.lines)*r.FontHeight()+2*labelPadding)
}

// Layout sizes the label to its text when FitText is set, then places it.
func (l *Label) Layout(g *GUI, area geom.Rect) {
	if l.fitText {
		l.fit(g.Renderer())
	}
	l.place(g, area)
}

// PreDraw resolves the base style.
func (l *Label) PreDraw(g *GUI) {
	if !l.active(g) {
		return
	}
	l.currentStyle = l.ResolveStyle(g.Theme(), StateBase)
}

// Draw paints the style and the lines top to bottom.
func (l *Label) Draw(g *GUI) {
	if !l.active(g) {
		return
	}
	l.paint(g)
}

func (l *Label) paint(g *GUI) {
	l.drawStyle(g)

	r := g.Renderer()
	x := l.trueArea.X + labelPadding
	y := l.trueArea.Y + labelPadding
	for i, line := range l.lines {
		r.DrawText(line, x, y+i*r.FontHeight(), l.color)
	}
}

// drawFloating draws the label at pos outside of the tree passes. Used for
// tooltips, which follow the cursor and never take part in capture.
func (l *Label) drawFloating(g *GUI, pos geom.Vec) {
	l.fit(g.Renderer())
	l.trueArea = geom.Rect{X: pos.X, Y: pos.Y, Width: l.width, Height: l.height}
	l.currentStyle = l.ResolveStyle(g.Theme(), StateBase)
	l.paint(g)
}
