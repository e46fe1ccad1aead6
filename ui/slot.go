package ui

import (
	"slices"

	"github.com/OpticalFlyer/oaktree/geom"
	"github.com/OpticalFlyer/oaktree/item"
)

const (
	idSlot = "item_slot"

	slotSize     = 18
	itemIconSize = 16
)

// StackFilter decides whether a slot accepts or gives up a stack.
type StackFilter func(s *Slot, stack item.Stack) bool

func allowAll(*Slot, item.Stack) bool { return true }

// Slot shows one inventory slot of the open screen handler and moves items
// between it and the cursor. It only lays out, reacts and draws while the
// screen handler is an InventoryHandler.
type Slot struct {
	InteractiveBase

	slot        int
	inventoryID int

	canInsert  StackFilter
	canTake    StackFilter
	slotBorder int

	tooltip *Label
}

var _ Interactive = (*Slot)(nil)

// NewSlot creates an 18x18 slot showing slot of inventory inventoryID.
func NewSlot(slot, inventoryID int) *Slot {
	s := &Slot{
		slot:        slot,
		inventoryID: inventoryID,
		canInsert:   allowAll,
		canTake:     allowAll,
		slotBorder:  1,
	}
	s.initBase(s, idSlot)
	s.SetSize(slotSize, slotSize)
	return s
}

func (s *Slot) Index() int       { return s.slot }
func (s *Slot) InventoryID() int { return s.inventoryID }
func (s *Slot) SetSlotBorder(n int) {
	s.slotBorder = max(0, n)
}

// SetHighlightStyle overrides the overlay drawn while the cursor is over
// the slot.
func (s *Slot) SetHighlightStyle(st Style) { s.SetStyle(StateHighlight, st) }

// SetCanInsert sets the predicate for stacks placed into the slot.
func (s *Slot) SetCanInsert(f StackFilter) {
	if f == nil {
		f = allowAll
	}
	s.canInsert = f
}

// SetCanTake sets the predicate for stacks taken out of the slot.
func (s *Slot) SetCanTake(f StackFilter) {
	if f == nil {
		f = allowAll
	}
	s.canTake = f
}

// Filter only accepts stacks of the listed items.
func (s *Slot) Filter(items ...string) {
	s.canInsert = func(_ *Slot, stack item.Stack) bool {
		return slices.Contains(items, stack.Item)
	}
}

func (s *Slot) handler(g *GUI) (InventoryHandler, bool) {
	h, ok := g.ScreenHandler().(InventoryHandler)
	return h, ok && h != nil
}

func (s *Slot) tooltipLabel() *Label {
	if s.tooltip == nil {
		s.tooltip = NewLabel()
		s.tooltip.SetID(idTooltip)
	}
	return s.tooltip
}

// Layout places the slot when an inventory screen is open.
func (s *Slot) Layout(g *GUI, area geom.Rect) {
	if _, ok := s.handler(g); !ok {
		return
	}
	s.place(g, area)
}

// PreDraw applies a click to the slot and syncs the result.
func (s *Slot) PreDraw(g *GUI) {
	h, ok := s.handler(g)
	if !ok || !s.active(g) {
		return
	}
	s.currentStyle = s.ResolveStyle(g.Theme(), StateBase)

	if !s.mouseWithin {
		return
	}
	inv := h.Inventory(s.inventoryID)
	if inv == nil {
		return
	}

	if s.transact(g, h, inv) {
		g.host.Sync.SyncStack(s.slot, s.inventoryID, h.SyncID(), inv.Stack(s.slot))
	}

	if stack := inv.Stack(s.slot); !stack.IsEmpty() {
		s.tooltipLabel().SetText(h.Tooltip(stack)...)
	}
}

// transact applies this frame's click to the slot and reports whether
// anything moved.
func (s *Slot) transact(g *GUI, h InventoryHandler, inv Inventory) bool {
	left := g.MouseButtonJustClicked(MouseLeft)
	right := g.MouseButtonJustClicked(MouseRight)
	if !left && !right {
		return false
	}

	stack := inv.Stack(s.slot)
	cursor := h.CursorStack()

	if cursor.IsEmpty() {
		if stack.IsEmpty() || !s.canTake(s, stack) {
			return false
		}
		count := stack.Count
		if !left {
			count /= 2
		}
		taken := inv.RemoveStack(s.slot, count)
		if taken.IsEmpty() {
			return false
		}
		h.SetCursorStack(taken)
		return true
	}

	if !s.canInsert(s, cursor) {
		return false
	}

	if stack.IsEmpty() {
		if left {
			inv.SetStack(s.slot, cursor)
			h.SetCursorStack(item.Empty)
		} else {
			rest, one := item.Split(cursor, 1)
			inv.SetStack(s.slot, one)
			h.SetCursorStack(rest)
		}
		return true
	}

	amount := 1
	if left {
		amount = cursor.Count
	}
	from, to, moved := item.Combine(cursor, stack, amount)
	if moved == 0 {
		return false
	}
	h.SetCursorStack(from)
	inv.SetStack(s.slot, to)
	return true
}

// Draw paints the slot, its item and the highlight under the cursor.
func (s *Slot) Draw(g *GUI) {
	h, ok := s.handler(g)
	if !ok || !s.active(g) {
		return
	}
	s.drawStyle(g)

	area := s.trueArea
	if inv := h.Inventory(s.inventoryID); inv != nil {
		if stack := inv.Stack(s.slot); !stack.IsEmpty() {
			x := area.X + (area.Width-itemIconSize)/2
			y := area.Y + (area.Height-itemIconSize)/2
			g.host.Items.DrawItem(stack, x, y)
		}
	}

	if s.mouseWithin {
		if hl := s.lookupStyle(g.Theme(), StateHighlight); hl != nil {
			b := s.slotBorder
			hl.Draw(g.Renderer(), area.Shrink(b, b, b, b))
		}
	}
}

func (s *Slot) drawTooltip(g *GUI) {
	if s.tooltip == nil || !s.mouseWithin || !s.active(g) {
		return
	}
	h, ok := s.handler(g)
	if !ok {
		return
	}
	inv := h.Inventory(s.inventoryID)
	if inv == nil || inv.Stack(s.slot).IsEmpty() {
		return
	}
	s.tooltip.drawFloating(g, g.Mouse().Add(geom.Vec{X: 12, Y: -12}))
}
