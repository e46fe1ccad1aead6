package host

import "github.com/OpticalFlyer/oaktree/ui"

var _ ui.Screen = (*Screen)(nil)

// Screen tracks the layout size reported by ebiten and the size the root
// control asked for.
type Screen struct {
	width, height               int
	contentWidth, contentHeight int
}

// Size returns the layout size reported by ebiten.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// RequestSize records the size of the root control.
func (s *Screen) RequestSize(width, height int) {
	s.contentWidth, s.contentHeight = width, height
}

// ContentSize returns the size last requested by the root control.
func (s *Screen) ContentSize() (int, int) {
	return s.contentWidth, s.contentHeight
}

func (s *Screen) setLayout(width, height int) {
	s.width, s.height = width, height
}
