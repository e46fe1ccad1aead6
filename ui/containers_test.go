package ui

import (
	"slices"
	"testing"

	"github.com/OpticalFlyer/oaktree/geom"
)

func TestAnchoredLayout(t *testing.T) {
	tests := []struct {
		name   string
		anchor geom.Anchor
		pos    geom.Vec
		want   geom.Vec
	}{
		{name: "Top left", anchor: geom.TopLeft, pos: geom.Vec{X: 3, Y: 4}, want: geom.Vec{X: 3, Y: 4}},
		{name: "Center", anchor: geom.Center, want: geom.Vec{X: 40, Y: 45}},
		{name: "Bottom right with offset", anchor: geom.BottomRight, pos: geom.Vec{X: -5, Y: -5}, want: geom.Vec{X: 75, Y: 85}},
		{name: "Top center", anchor: geom.TopCenter, want: geom.Vec{X: 40, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := NewLabel()
			child.SetSize(20, 10)
			child.SetAnchor(tt.anchor)
			child.SetPosition(tt.pos.X, tt.pos.Y)
			r := newRig(child)
			r.root.SetSize(100, 100)
			r.frame(0, 0, false)

			if got := child.TruePosition(); got != tt.want {
				t.Errorf("TruePosition() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPanelMargins(t *testing.T) {
	p := newSpy("p", nil)
	r := newRig(p)
	r.root.SetMargins(1, 2, 3, 4)
	r.frame(0, 0, false)

	want := geom.Rect{X: 1, Y: 2, Width: 296, Height: 294}
	if got := p.TrueArea(); got != want {
		t.Errorf("child area %v; want %v", got, want)
	}
	if got := r.root.InnerArea(); got != want {
		t.Errorf("InnerArea() = %v; want %v", got, want)
	}
}

func TestPanelRemove(t *testing.T) {
	p := newSpy("p", nil)
	r := newRig(p)
	r.root.Remove(p)
	r.frame(0, 0, false)

	if p.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if p.layouts != 0 {
		t.Error("removed child was laid out")
	}

	// a removed child can be added again
	r.root.Add(p)
	r.frame(0, 0, false)
	if p.layouts != 1 {
		t.Errorf("re-added child laid out %d times; want 1", p.layouts)
	}
}

func TestHiddenPanelHidesChildren(t *testing.T) {
	inner := NewPanel()
	inner.SetSize(100, 100)
	p := newSpy("p", nil)
	inner.Add(p)
	r := newRig(inner)

	inner.SetVisible(false)
	r.frame(10, 10, false)

	if p.layouts+p.preDraws+p.draws != 0 {
		t.Errorf("child of a hidden panel took part in the frame: %+v", p)
	}
	if r.gui.Captured() != r.root {
		t.Errorf("Captured() = %v; want root", r.gui.Captured())
	}
}

func TestSplitBox(t *testing.T) {
	tests := []struct {
		name      string
		vertical  bool
		percent   float64
		wantLeft  geom.Rect
		wantRight geom.Rect
	}{
		{
			name: "Thirty percent", percent: 30,
			wantLeft:  geom.Rect{X: 0, Y: 0, Width: 60, Height: 50},
			wantRight: geom.Rect{X: 60, Y: 0, Width: 140, Height: 50},
		},
		{
			name: "Rounds down", percent: 33.3,
			wantLeft:  geom.Rect{X: 0, Y: 0, Width: 66, Height: 50},
			wantRight: geom.Rect{X: 66, Y: 0, Width: 134, Height: 50},
		},
		{
			name: "All left", percent: 100,
			wantLeft:  geom.Rect{X: 0, Y: 0, Width: 200, Height: 50},
			wantRight: geom.Rect{X: 200, Y: 0, Width: 0, Height: 50},
		},
		{
			name: "Vertical", vertical: true, percent: 20,
			wantLeft:  geom.Rect{X: 0, Y: 0, Width: 200, Height: 10},
			wantRight: geom.Rect{X: 0, Y: 10, Width: 200, Height: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := newSpy("left", nil), newSpy("right", nil)
			split := NewSplitBox()
			split.SetSize(200, 50)
			split.SetVertical(tt.vertical)
			split.SetSplitPercent(tt.percent)
			split.SetLeft(left)
			split.SetRight(right)
			r := newRig(split)
			r.frame(0, 0, false)

			if got := left.TrueArea(); got != tt.wantLeft {
				t.Errorf("left %v; want %v", got, tt.wantLeft)
			}
			if got := right.TrueArea(); got != tt.wantRight {
				t.Errorf("right %v; want %v", got, tt.wantRight)
			}
			if split.Left().TrueArea().Width+split.Right().TrueArea().Width != 200 && !tt.vertical {
				t.Error("split boxes do not cover the whole width")
			}
		})
	}
}

func TestSplitPercentClamped(t *testing.T) {
	s := NewSplitBox()
	if s.SplitPercent() != 50 {
		t.Errorf("default split %v; want 50", s.SplitPercent())
	}
	for _, tt := range []struct{ in, want float64 }{{-10, 0}, {120, 100}, {25, 25}} {
		s.SetSplitPercent(tt.in)
		if s.SplitPercent() != tt.want {
			t.Errorf("SetSplitPercent(%v) = %v; want %v", tt.in, s.SplitPercent(), tt.want)
		}
	}
}

func TestBoxMarginsAndChild(t *testing.T) {
	first, second := newSpy("first", nil), newSpy("second", nil)
	box := NewBox()
	box.SetSize(100, 100)
	box.SetMargin(10)
	box.SetChild(first)
	box.SetChild(second)
	r := newRig(box)
	r.frame(0, 0, false)

	if first.Parent() != nil {
		t.Error("replaced child still has a parent")
	}
	if want := (geom.Rect{X: 10, Y: 10, Width: 80, Height: 80}); second.TrueArea() != want {
		t.Errorf("child area %v; want %v", second.TrueArea(), want)
	}

	box.SetMargin(-4)
	r.frame(0, 0, false)
	if want := (geom.Rect{Width: 100, Height: 100}); second.TrueArea() != want {
		t.Errorf("negative margin gave %v; want %v", second.TrueArea(), want)
	}
}

func TestPagePanelShowsOnePage(t *testing.T) {
	var log []string
	spies := []*spy{newSpy("a", &log), newSpy("b", &log), newSpy("c", &log)}
	pages := NewPagePanel()
	pages.SetExpand(true)
	for _, p := range spies {
		pages.Add(p)
	}
	r := newRig(pages)

	pages.SetPage(1)
	r.frame(10, 10, false)

	want := []string{"pre:b", "draw:b"}
	if !slices.Equal(log, want) {
		t.Errorf("passes %v; want %v", log, want)
	}
	if r.gui.Captured() != spies[1] {
		t.Errorf("Captured() = %v; want page b", r.gui.Captured())
	}
	for _, i := range []int{0, 2} {
		if slices.Contains(r.gui.ZIndex(), Control(spies[i])) {
			t.Errorf("hidden page %d is in the stacking order", i)
		}
	}
}

func TestPagePanelNavigation(t *testing.T) {
	pages := NewPagePanel()
	for i := 0; i < 3; i++ {
		pages.Add(NewLabel())
	}

	tests := []struct {
		name string
		op   func()
		want int
	}{
		{name: "Set in range", op: func() { pages.SetPage(1) }, want: 1},
		{name: "Next", op: pages.NextPage, want: 2},
		{name: "Next past end", op: pages.NextPage, want: 2},
		{name: "Previous", op: pages.PreviousPage, want: 1},
		{name: "Flip back", op: func() { pages.FlipPages(-5) }, want: 0},
		{name: "Set below zero", op: func() { pages.SetPage(-3) }, want: 0},
		{name: "Set past end", op: func() { pages.SetPage(9) }, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.op()
			if pages.Page() != tt.want {
				t.Errorf("Page() = %d; want %d", pages.Page(), tt.want)
			}
			if pages.Current() != pages.Children()[tt.want] {
				t.Error("Current() does not match Page()")
			}
		})
	}
}

func TestEmptyPagePanel(t *testing.T) {
	pages := NewPagePanel()
	pages.NextPage()
	if pages.Page() != 0 || pages.Current() != nil {
		t.Errorf("empty panel: page %d, current %v", pages.Page(), pages.Current())
	}
	newRig(pages).frame(0, 0, false)
}

func TestLabelFitText(t *testing.T) {
	l := NewLabel("abc", "abcdef")
	l.SetFitText(true)
	r := newRig(l)
	r.frame(0, 0, false)

	// 6 px per rune and 9 px lines from the fake renderer, plus padding
	if w, h := l.Size(); w != 36+2*labelPadding || h != 18+2*labelPadding {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if !slices.Equal(r.renderer.texts, []string{"abc", "abcdef"}) {
		t.Errorf("drew %v", r.renderer.texts)
	}
}

func TestSplitBoxHalvesIgnoreVisibility(t *testing.T) {
	left, right := newSpy("left", nil), newSpy("right", nil)
	split := NewSplitBox()
	split.SetSize(200, 50)
	split.SetLeft(left)
	split.SetRight(right)
	split.Left().SetVisible(false)
	split.Right().SetVisible(false)
	r := newRig(split)
	r.frame(0, 0, false)

	for _, p := range []*spy{left, right} {
		if p.layouts != 1 || p.preDraws != 1 || p.draws != 1 {
			t.Errorf("%s half: %d layouts, %d pre-draws, %d draws; want 1 each",
				p.name, p.layouts, p.preDraws, p.draws)
		}
	}

	split.SetVisible(false)
	r.frame(0, 0, false)
	if left.layouts != 1 {
		t.Error("hiding the split box itself should still hide its halves")
	}
}
