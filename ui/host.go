package ui

import (
	"image/color"

	"github.com/OpticalFlyer/oaktree/item"
)

// Renderer draws primitives on the host surface.
type Renderer interface {
	DrawRectangle(x, y, width, height int, c color.Color)
	DrawTexture(x, y, left, top, width, height int, fileWidth, fileHeight, scale float32, texture string, tint color.Color)
	DrawText(s string, x, y int, c color.Color)
	TextWidth(s string) int
	FontHeight() int
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight

	mouseButtonCount
)

// Input exposes the raw pointer and keyboard state for the current frame.
type Input interface {
	CursorPosition() (x, y int)
	IsMouseButtonDown(b MouseButton) bool
	// AppendTypedChars appends the characters typed since the last frame.
	AppendTypedChars(chars []rune) []rune
}

// Screen is the surface hosting the tree. Size is the scaled viewport the
// root is laid out in; RequestSize asks the host to fit its surface to the
// root control.
type Screen interface {
	Size() (width, height int)
	RequestSize(width, height int)
}

// SoundPlayer plays a named sound. Playback is fire-and-forget.
type SoundPlayer interface {
	Play(sound string)
}

// ItemRenderer draws an item stack icon with its count overlay.
type ItemRenderer interface {
	DrawItem(stack item.Stack, x, y int)
}

// Inventory is a single addressable item store.
type Inventory interface {
	Stack(slot int) item.Stack
	SetStack(slot int, stack item.Stack)
	// RemoveStack takes up to count items out of slot and returns them.
	RemoveStack(slot, count int) item.Stack
}

// InventoryHandler is a screen handler backed by inventories. It is the
// only way slot controls touch item storage.
type InventoryHandler interface {
	// Inventory returns nil when id is unknown.
	Inventory(id int) Inventory
	CursorStack() item.Stack
	SetCursorStack(stack item.Stack)
	SyncID() int
	Tooltip(stack item.Stack) []string
}

// ScreenHandlerSource reports the screen handler of the open screen, or
// nil when there is none. Implementations must return an untyped nil, as a
// nil pointer stored in the interface reads as an open screen.
type ScreenHandlerSource interface {
	ScreenHandler() any
}

// StackSyncer forwards slot changes to the network layer. Delivery is
// owned by the implementation.
type StackSyncer interface {
	SyncStack(slot, inventoryID, syncID int, stack item.Stack)
}

// Host bundles the collaborators a GUI calls into. Nil fields are replaced
// with no-op implementations.
type Host struct {
	Renderer Renderer
	Input    Input
	Screen   Screen
	Sound    SoundPlayer
	Items    ItemRenderer
	Sync     StackSyncer
	Handlers ScreenHandlerSource
}

func (h Host) withDefaults() Host {
	if h.Renderer == nil {
		h.Renderer = nopRenderer{}
	}
	if h.Input == nil {
		h.Input = nopInput{}
	}
	if h.Screen == nil {
		h.Screen = fixedScreen{}
	}
	if h.Sound == nil {
		h.Sound = nopSound{}
	}
	if h.Items == nil {
		h.Items = nopItems{}
	}
	if h.Sync == nil {
		h.Sync = nopSync{}
	}
	if h.Handlers == nil {
		h.Handlers = nopHandlers{}
	}
	return h
}

type nopRenderer struct{}

func (nopRenderer) DrawRectangle(int, int, int, int, color.Color) {}
func (nopRenderer) DrawText(string, int, int, color.Color)        {}
func (nopRenderer) TextWidth(string) int                          { return 0 }
func (nopRenderer) FontHeight() int                               { return 0 }

func (nopRenderer) DrawTexture(x, y, left, top, width, height int, fileWidth, fileHeight, scale float32, texture string, tint color.Color) {
}

type nopInput struct{}

func (nopInput) CursorPosition() (int, int)           { return 0, 0 }
func (nopInput) IsMouseButtonDown(MouseButton) bool   { return false }
func (nopInput) AppendTypedChars(chars []rune) []rune { return chars }

type fixedScreen struct{}

func (fixedScreen) Size() (int, int)     { return 0, 0 }
func (fixedScreen) RequestSize(int, int) {}

type nopSound struct{}

func (nopSound) Play(string) {}

type nopItems struct{}

func (nopItems) DrawItem(item.Stack, int, int) {}

type nopSync struct{}

func (nopSync) SyncStack(int, int, int, item.Stack) {}

type nopHandlers struct{}

func (nopHandlers) ScreenHandler() any { return nil }
