package inventory

import (
	"fmt"

	"github.com/OpticalFlyer/oaktree/item"
	"github.com/OpticalFlyer/oaktree/ui"
)

var (
	_ ui.Inventory           = (*Inventory)(nil)
	_ ui.InventoryHandler    = (*Handler)(nil)
	_ ui.ScreenHandlerSource = (*Active)(nil)
)

// Inventory is a fixed number of item slots held in memory.
type Inventory struct {
	stacks []item.Stack
}

// New creates an inventory with size empty slots.
func New(size int) *Inventory {
	return &Inventory{stacks: make([]item.Stack, max(0, size))}
}

// Size returns the number of slots.
func (inv *Inventory) Size() int { return len(inv.stacks) }

// Stack returns the stack in slot, or the empty stack for an invalid slot.
func (inv *Inventory) Stack(slot int) item.Stack {
	if slot < 0 || slot >= len(inv.stacks) {
		return item.Empty
	}
	return inv.stacks[slot]
}

// SetStack replaces the stack in slot. Invalid slots are ignored.
func (inv *Inventory) SetStack(slot int, stack item.Stack) {
	if slot < 0 || slot >= len(inv.stacks) {
		return
	}
	if stack.IsEmpty() {
		stack = item.Empty
	}
	inv.stacks[slot] = stack
}

// RemoveStack takes up to count items out of slot and returns them.
func (inv *Inventory) RemoveStack(slot, count int) item.Stack {
	rest, taken := item.Split(inv.Stack(slot), count)
	inv.SetStack(slot, rest)
	return taken
}

// Handler is the transaction host of an open inventory screen: a set of
// inventories by id plus the stack carried by the cursor.
type Handler struct {
	syncID      int
	inventories map[int]*Inventory
	cursor      item.Stack
}

// NewHandler creates a handler with no inventories and an empty cursor.
func NewHandler(syncID int) *Handler {
	return &Handler{
		syncID:      syncID,
		inventories: make(map[int]*Inventory),
	}
}

// Add registers inv under id.
func (h *Handler) Add(id int, inv *Inventory) {
	h.inventories[id] = inv
}

// Inventory returns the inventory registered under id, or an untyped nil.
func (h *Handler) Inventory(id int) ui.Inventory {
	if h == nil {
		return nil
	}
	inv, ok := h.inventories[id]
	if !ok || inv == nil {
		return nil
	}
	return inv
}

func (h *Handler) CursorStack() item.Stack { return h.cursor }
func (h *Handler) SyncID() int             { return h.syncID }

// SetCursorStack replaces the stack carried by the cursor.
func (h *Handler) SetCursorStack(stack item.Stack) {
	if stack.IsEmpty() {
		stack = item.Empty
	}
	h.cursor = stack
}

// Tooltip returns the item name, its metadata if any and the fill level.
func (h *Handler) Tooltip(stack item.Stack) []string {
	if stack.IsEmpty() {
		return nil
	}
	lines := []string{stack.Item}
	if stack.Meta != "" {
		lines = append(lines, stack.Meta)
	}
	return append(lines, fmt.Sprintf("%d/%d", stack.Count, stack.Capacity()))
}

// Active holds the screen handler of the open screen.
type Active struct {
	handler any
}

// Open makes h the active screen handler. A nil *Handler closes the
// screen instead, so ScreenHandler never returns a typed nil.
func (a *Active) Open(h any) {
	if hh, ok := h.(*Handler); ok && hh == nil {
		h = nil
	}
	a.handler = h
}

// Close clears the active screen handler.
func (a *Active) Close() { a.handler = nil }

// ScreenHandler returns the handler of the open screen, or nil.
func (a *Active) ScreenHandler() any { return a.handler }
