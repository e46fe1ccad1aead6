package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/oaktree/ui"
)

var _ ui.Input = (*Input)(nil)

// Input reads the ebiten pointer state. Typed characters are collected
// during Update and handed to the GUI on the next frame.
type Input struct {
	pending []rune
}

// collect must be called from ebiten's Update.
func (in *Input) collect() {
	in.pending = ebiten.AppendInputChars(in.pending)
}

// CursorPosition returns the cursor in screen pixels.
func (in *Input) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *Input) IsMouseButtonDown(b ui.MouseButton) bool {
	switch b {
	case ui.MouseLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case ui.MouseRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	return false
}

// AppendTypedChars hands over the runes collected since the last call.
func (in *Input) AppendTypedChars(chars []rune) []rune {
	chars = append(chars, in.pending...)
	in.pending = in.pending[:0]
	return chars
}
