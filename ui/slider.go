package ui

import "github.com/OpticalFlyer/oaktree/geom"

const idSlider = "slider"

// SlideFunc is called after a drag moved the slider.
type SlideFunc func(g *GUI, s *Slider)

// Slider is a track with a draggable thumb. The position is kept as a
// percentage in [0, 100].
type Slider struct {
	InteractiveBase

	scrollPercent float64
	horizontal    bool
	barLength     int
	onSlide       SlideFunc
}

var _ Interactive = (*Slider)(nil)

// NewSlider creates a slider at 0% with a one pixel thumb.
func NewSlider(horizontal bool) *Slider {
	s := &Slider{
		horizontal: horizontal,
		barLength:  1,
		onSlide:    func(*GUI, *Slider) {},
	}
	s.initBase(s, idSlider)
	return s
}

// ScrollPercent returns the thumb position in [0, 100].
func (s *Slider) ScrollPercent() float64 { return s.scrollPercent }

// SetScrollPercent moves the thumb. Values outside [0, 100] are clamped.
func (s *Slider) SetScrollPercent(p float64) { s.scrollPercent = geom.Clamp(p, 0, 100) }

func (s *Slider) Horizontal() bool        { return s.horizontal }
func (s *Slider) SetHorizontal(h bool)    { s.horizontal = h }
func (s *Slider) BarLength() int          { return s.barLength }
func (s *Slider) SetBarLength(length int) { s.barLength = max(1, length) }
func (s *Slider) SetSliderStyle(st Style) { s.SetStyle(StateSlider, st) }
// OnSlide sets the callback run after every drag step.
func (s *Slider) OnSlide(fn SlideFunc) {
	if fn == nil {
		fn = func(*GUI, *Slider) {}
	}
	s.onSlide = fn
}

func (s *Slider) trackLength() int {
	if s.horizontal {
		return s.trueArea.Width
	}
	return s.trueArea.Height
}

// slideTo centres the thumb on the given offset along the track.
func (s *Slider) slideTo(offset int) {
	bar := min(s.barLength, s.trackLength())
	travel := s.trackLength() - bar
	if travel <= 0 {
		s.scrollPercent = 0
		return
	}
	p := (float64(offset) - float64(bar)/2) / float64(travel) * 100
	s.SetScrollPercent(p)
}

// ThumbArea returns the screen-space rectangle of the thumb. It always
// lies inside the track.
func (s *Slider) ThumbArea() geom.Rect {
	thumb := s.trueArea
	bar := min(s.barLength, s.trackLength())
	shift := int(s.scrollPercent / 100 * float64(s.trackLength()-bar))

	if s.horizontal {
		thumb.X += shift
		thumb.Width = bar
	} else {
		thumb.Y += shift
		thumb.Height = bar
	}
	return thumb
}

// Layout places the track in the area offered by its container.
func (s *Slider) Layout(g *GUI, area geom.Rect) {
	s.place(g, area)
}

// PreDraw follows the cursor only while the slider holds the capture, so a
// drag stops as soon as the cursor leaves the track.
func (s *Slider) PreDraw(g *GUI) {
	if !s.active(g) {
		return
	}

	if s.mouseWithin && g.MouseButtonHeld(MouseLeft) {
		rel := s.relativeMouse(g)
		if s.horizontal {
			s.slideTo(rel.X)
		} else {
			s.slideTo(rel.Y)
		}
		s.onSlide(g, s)
	}

	s.currentStyle = s.ResolveStyle(g.Theme(), StateBase)
}

// Draw paints the track and then the thumb.
func (s *Slider) Draw(g *GUI) {
	if !s.active(g) {
		return
	}
	s.drawStyle(g)

	if thumb := s.lookupStyle(g.Theme(), StateSlider); thumb != nil {
		thumb.Draw(g.Renderer(), s.ThumbArea())
	}
}
