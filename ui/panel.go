package ui

import (
	"slices"

	"github.com/OpticalFlyer/oaktree/geom"
)

const (
	idPanel     = "panel"
	idPagePanel = "page_panel"
)

// margins are left, top, right, bottom.
type margins [4]int

func (m margins) inner(r geom.Rect) geom.Rect {
	return r.Shrink(m[0], m[1], m[2], m[3])
}

func uniform(m int) margins {
	m = max(0, m)
	return margins{m, m, m, m}
}

// Panel stacks its children inside its own area minus margins. Children
// added later are drawn on top.
type Panel struct {
	Base

	children []Control
	margins  margins
}

var _ Container = (*Panel)(nil)

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	p := &Panel{}
	p.initBase(p, idPanel)
	return p
}

// Add appends children. It panics if a child already has a parent.
func (p *Panel) Add(children ...Control) {
	for _, c := range children {
		adopt(p.self, c)
		p.children = append(p.children, c)
	}
}

// Remove detaches child from the panel and runs cleanup over its subtree.
func (p *Panel) Remove(child Control) {
	i := slices.Index(p.children, child)
	if i < 0 {
		return
	}
	p.children = slices.Delete(p.children, i, i+1)
	detach(child)
}

// Children returns the children in drawing order.
func (p *Panel) Children() []Control { return p.children }

// SetMargin sets the same margin on every side. Negative values become 0.
func (p *Panel) SetMargin(m int) { p.margins = uniform(m) }

// SetMargins sets each side separately. Negative values become 0.
func (p *Panel) SetMargins(left, top, right, bottom int) {
	p.margins = margins{max(0, left), max(0, top), max(0, right), max(0, bottom)}
}

// InnerArea is the area offered to children in the last layout.
func (p *Panel) InnerArea() geom.Rect { return p.margins.inner(p.trueArea) }

// Layout places the panel and its children inside the margins.
func (p *Panel) Layout(g *GUI, area geom.Rect) {
	if !p.place(g, area) {
		return
	}
	inner := p.InnerArea()
	for _, c := range p.children {
		c.Layout(g, inner)
	}
}

// PreDraw resolves the style and runs PreDraw on the children.
func (p *Panel) PreDraw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.currentStyle = p.ResolveStyle(g.Theme(), StateBase)
	for _, c := range p.children {
		c.PreDraw(g)
	}
}

// Draw paints the panel below its children.
func (p *Panel) Draw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.drawStyle(g)
	for _, c := range p.children {
		c.Draw(g)
	}
}

// PagePanel shows one child at a time. The other children get no layout,
// interaction or drawing at all while their page is not selected.
type PagePanel struct {
	Panel

	page int
}

var _ Container = (*PagePanel)(nil)

// NewPagePanel creates a page panel showing page 0.
func NewPagePanel() *PagePanel {
	p := &PagePanel{}
	p.initBase(p, idPagePanel)
	return p
}

// Page returns the selected page, clamped to the current children.
func (p *PagePanel) Page() int {
	return geom.ClampInt(p.page, 0, len(p.children)-1)
}

// SetPage selects a page. Out of range values are clamped.
func (p *PagePanel) SetPage(page int) {
	p.page = geom.ClampInt(page, 0, len(p.children)-1)
}

func (p *PagePanel) NextPage()           { p.SetPage(p.Page() + 1) }
func (p *PagePanel) PreviousPage()       { p.SetPage(p.Page() - 1) }
func (p *PagePanel) FlipPages(count int) { p.SetPage(p.Page() + count) }

// Current returns the child on the selected page, or nil without children.
func (p *PagePanel) Current() Control {
	if len(p.children) == 0 {
		return nil
	}
	return p.children[p.Page()]
}

// Layout places the panel and the current page only.
func (p *PagePanel) Layout(g *GUI, area geom.Rect) {
	if !p.place(g, area) {
		return
	}
	if c := p.Current(); c != nil {
		c.Layout(g, p.InnerArea())
	}
}

// PreDraw resolves the style and runs PreDraw on the current page.
func (p *PagePanel) PreDraw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.currentStyle = p.ResolveStyle(g.Theme(), StateBase)
	if c := p.Current(); c != nil {
		c.PreDraw(g)
	}
}

// Draw paints the panel below the current page.
func (p *PagePanel) Draw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.drawStyle(g)
	if c := p.Current(); c != nil {
		c.Draw(g)
	}
}
