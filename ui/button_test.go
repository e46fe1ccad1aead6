package ui

import (
	"image/color"
	"testing"
)

type buttonCounts struct {
	clicks, helds, releases int
}

func countingButton(toggle bool) (*Button, *buttonCounts) {
	n := &buttonCounts{}
	b := NewButton("b")
	b.SetPosition(10, 10)
	b.SetToggleable(toggle)
	b.OnClick(func(*GUI, *Button) { n.clicks++ })
	b.WhileHeld(func(*GUI, *Button) { n.helds++ })
	b.OnRelease(func(*GUI, *Button) { n.releases++ })
	return b, n
}

func TestButtonPressAndRelease(t *testing.T) {
	b, n := countingButton(false)
	r := newRig(b)

	steps := []struct {
		name   string
		x, y   int
		down   bool
		want   buttonCounts
		isHeld bool
	}{
		{name: "Hover", x: 20, y: 20, want: buttonCounts{}},
		{name: "Press", x: 20, y: 20, down: true, want: buttonCounts{1, 1, 0}, isHeld: true},
		{name: "Hold", x: 25, y: 20, down: true, want: buttonCounts{1, 2, 0}, isHeld: true},
		{name: "Release", x: 25, y: 20, want: buttonCounts{1, 2, 1}},
		{name: "Idle", x: 25, y: 20, want: buttonCounts{1, 2, 1}},
	}

	for _, st := range steps {
		r.frame(st.x, st.y, st.down)
		if *n != st.want {
			t.Errorf("%s: counts %+v; want %+v", st.name, *n, st.want)
		}
		if b.Held() != st.isHeld {
			t.Errorf("%s: Held() = %v; want %v", st.name, b.Held(), st.isHeld)
		}
	}

	if len(r.sound.played) != 1 || r.sound.played[0] != DefaultClickSound {
		t.Errorf("played %v; want one click", r.sound.played)
	}
}

func TestButtonReleasesWhenCursorLeaves(t *testing.T) {
	b, n := countingButton(false)
	r := newRig(b)

	r.frame(20, 20, true)
	r.frame(200, 200, true)
	r.frame(200, 200, true)
	r.frame(200, 200, false)

	if want := (buttonCounts{1, 1, 1}); *n != want {
		t.Errorf("counts %+v; want %+v", *n, want)
	}
}

func TestButtonIgnoresDragIn(t *testing.T) {
	b, n := countingButton(false)
	r := newRig(b)

	r.frame(200, 200, true)
	r.frame(20, 20, true)
	r.frame(20, 20, true)
	r.frame(20, 20, false)

	if *n != (buttonCounts{}) {
		t.Errorf("counts %+v; want none", *n)
	}
	if len(r.sound.played) != 0 {
		t.Errorf("played %v; want nothing", r.sound.played)
	}
}

func TestButtonIgnoresRightClick(t *testing.T) {
	b, n := countingButton(false)
	r := newRig(b)

	r.rightFrame(20, 20, true)
	r.rightFrame(20, 20, false)

	if *n != (buttonCounts{}) {
		t.Errorf("counts %+v; want none", *n)
	}
}

func TestToggleButton(t *testing.T) {
	for clicks := 0; clicks <= 5; clicks++ {
		b, n := countingButton(true)
		r := newRig(b)

		for i := 0; i < clicks; i++ {
			r.click(20, 20)
		}

		if want := clicks%2 == 1; b.Held() != want {
			t.Errorf("%d clicks: Held() = %v; want %v", clicks, b.Held(), want)
		}
		if want := (clicks + 1) / 2; n.clicks != want {
			t.Errorf("%d clicks: onClick ran %d times; want %d", clicks, n.clicks, want)
		}
		if want := clicks / 2; n.releases != want {
			t.Errorf("%d clicks: onRelease ran %d times; want %d", clicks, n.releases, want)
		}
		if len(r.sound.played) != clicks {
			t.Errorf("%d clicks: played %d sounds", clicks, len(r.sound.played))
		}
	}
}

func TestToggleButtonHeldWithoutCursor(t *testing.T) {
	b, n := countingButton(true)
	r := newRig(b)

	r.click(20, 20)
	before := n.helds
	r.frame(200, 200, false)
	r.frame(200, 200, false)

	if n.helds != before+2 {
		t.Errorf("whileHeld ran %d times away from the button; want 2", n.helds-before)
	}
	if n.releases != 0 {
		t.Error("leaving a toggled button released it")
	}
}

func TestButtonStyleStates(t *testing.T) {
	base := NewColorStyle(color.RGBA{1, 0, 0, 255})
	hover := NewColorStyle(color.RGBA{2, 0, 0, 255})
	held := NewColorStyle(color.RGBA{3, 0, 0, 255})

	b := NewButton("b")
	b.SetPosition(10, 10)
	b.SetStyle(StateBase, base)
	b.SetStyle(StateHover, hover)
	b.SetStyle(StateHeld, held)
	r := newRig(b)

	tests := []struct {
		name string
		x, y int
		down bool
		want Style
	}{
		{name: "Idle", x: 200, y: 200, want: base},
		{name: "Hovered", x: 20, y: 20, want: hover},
		{name: "Held", x: 20, y: 20, down: true, want: held},
		{name: "Released", x: 20, y: 20, want: hover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.frame(tt.x, tt.y, tt.down)
			if b.CurrentStyle() != tt.want {
				t.Errorf("CurrentStyle() = %v; want %v", b.CurrentStyle(), tt.want)
			}
		})
	}
}

func TestButtonDrawsCenteredText(t *testing.T) {
	b := NewButton("ok")
	r := newRig(b)
	r.frame(200, 200, false)

	if len(r.renderer.texts) != 1 || r.renderer.texts[0] != "ok" {
		t.Errorf("drew text %v; want [ok]", r.renderer.texts)
	}
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	b := NewButton("b")
	b.OnClick(nil)
	b.WhileHeld(nil)
	b.OnRelease(nil)
	r := newRig(b)

	r.frame(5, 5, true)
	r.frame(5, 5, false)
}

func TestLabelOverButtonBlocksHover(t *testing.T) {
	base := NewColorStyle(color.RGBA{1, 0, 0, 255})
	hover := NewColorStyle(color.RGBA{2, 0, 0, 255})

	b, n := countingButton(false)
	b.SetStyle(StateBase, base)
	b.SetStyle(StateHover, hover)
	cover := NewLabel("cover")
	cover.SetPosition(10, 10)
	cover.SetSize(100, 20)
	r := newRig(b, cover)

	r.frame(20, 20, false)
	if b.CurrentStyle() != base {
		t.Errorf("covered button style %v; want base", b.CurrentStyle())
	}

	r.frame(20, 20, true)
	if n.clicks != 0 || b.CurrentStyle() != base {
		t.Errorf("covered button: %d clicks, style %v; want no click and base", n.clicks, b.CurrentStyle())
	}
}
