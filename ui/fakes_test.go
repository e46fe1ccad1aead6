package ui

import (
	"image/color"

	"github.com/OpticalFlyer/oaktree/geom"
	"github.com/OpticalFlyer/oaktree/item"
)

type fakeRenderer struct {
	rects []geom.Rect
	texts []string
}

func (r *fakeRenderer) DrawRectangle(x, y, width, height int, _ color.Color) {
	r.rects = append(r.rects, geom.Rect{X: x, Y: y, Width: width, Height: height})
}

func (r *fakeRenderer) DrawTexture(x, y, _, _, width, height int, _, _, _ float32, _ string, _ color.Color) {
	r.rects = append(r.rects, geom.Rect{X: x, Y: y, Width: width, Height: height})
}

func (r *fakeRenderer) DrawText(s string, _, _ int, _ color.Color) { r.texts = append(r.texts, s) }
func (r *fakeRenderer) TextWidth(s string) int                     { return 6 * len(s) }
func (r *fakeRenderer) FontHeight() int                            { return 9 }

type fakeInput struct {
	x, y  int
	down  [mouseButtonCount]bool
	chars []rune
}

func (in *fakeInput) CursorPosition() (int, int)           { return in.x, in.y }
func (in *fakeInput) IsMouseButtonDown(b MouseButton) bool { return in.down[b] }

func (in *fakeInput) AppendTypedChars(chars []rune) []rune {
	chars = append(chars, in.chars...)
	in.chars = nil
	return chars
}

type fakeScreen struct {
	width, height int
	requested     geom.Vec
}

func (s *fakeScreen) Size() (int, int)              { return s.width, s.height }
func (s *fakeScreen) RequestSize(width, height int) { s.requested = geom.Vec{X: width, Y: height} }

type fakeSound struct {
	played []string
}

func (s *fakeSound) Play(sound string) { s.played = append(s.played, sound) }

type fakeItems struct {
	drawn []item.Stack
}

func (it *fakeItems) DrawItem(stack item.Stack, _, _ int) { it.drawn = append(it.drawn, stack) }

type syncCall struct {
	slot, inventoryID, syncID int
	stack                     item.Stack
}

type fakeSync struct {
	calls []syncCall
}

func (s *fakeSync) SyncStack(slot, inventoryID, syncID int, stack item.Stack) {
	s.calls = append(s.calls, syncCall{slot, inventoryID, syncID, stack})
}

type fakeInventory struct {
	stacks []item.Stack
}

func (inv *fakeInventory) Stack(slot int) item.Stack { return inv.stacks[slot] }

func (inv *fakeInventory) SetStack(slot int, stack item.Stack) {
	if stack.IsEmpty() {
		stack = item.Empty
	}
	inv.stacks[slot] = stack
}

func (inv *fakeInventory) RemoveStack(slot, count int) item.Stack {
	rest, taken := item.Split(inv.stacks[slot], count)
	inv.SetStack(slot, rest)
	return taken
}

type fakeHandler struct {
	inventories map[int]*fakeInventory
	cursor      item.Stack
}

func newFakeHandler(id int, stacks ...item.Stack) *fakeHandler {
	return &fakeHandler{
		inventories: map[int]*fakeInventory{id: {stacks: stacks}},
	}
}

func (h *fakeHandler) Inventory(id int) Inventory {
	inv, ok := h.inventories[id]
	if !ok {
		return nil
	}
	return inv
}

func (h *fakeHandler) CursorStack() item.Stack { return h.cursor }
func (h *fakeHandler) SyncID() int             { return 7 }

func (h *fakeHandler) SetCursorStack(stack item.Stack) {
	if stack.IsEmpty() {
		stack = item.Empty
	}
	h.cursor = stack
}

func (h *fakeHandler) Tooltip(stack item.Stack) []string {
	return []string{stack.Item}
}

type fakeHandlers struct {
	handler any
}

func (h *fakeHandlers) ScreenHandler() any { return h.handler }

// rig is a GUI over a 300x300 root panel wired to fakes.
type rig struct {
	gui      *GUI
	root     *Panel
	input    *fakeInput
	renderer *fakeRenderer
	screen   *fakeScreen
	sound    *fakeSound
	items    *fakeItems
	sync     *fakeSync
	handlers *fakeHandlers
}

func newRig(children ...Control) *rig {
	r := &rig{
		root:     NewPanel(),
		input:    &fakeInput{},
		renderer: &fakeRenderer{},
		screen:   &fakeScreen{width: 300, height: 300},
		sound:    &fakeSound{},
		items:    &fakeItems{},
		sync:     &fakeSync{},
		handlers: &fakeHandlers{},
	}
	r.root.SetSize(300, 300)
	r.root.Add(children...)
	r.gui = New(r.root, Host{
		Renderer: r.renderer,
		Input:    r.input,
		Screen:   r.screen,
		Sound:    r.sound,
		Items:    r.items,
		Sync:     r.sync,
		Handlers: r.handlers,
	})
	return r
}

// frame runs one frame with the cursor at (x, y) and the left button in
// the given state.
func (r *rig) frame(x, y int, left bool) {
	r.input.x, r.input.y = x, y
	r.input.down[MouseLeft] = left
	r.gui.Frame(1.0 / 60)
}

// rightFrame is frame for the right button.
func (r *rig) rightFrame(x, y int, right bool) {
	r.input.x, r.input.y = x, y
	r.input.down[MouseLeft] = false
	r.input.down[MouseRight] = right
	r.gui.Frame(1.0 / 60)
}

// click presses and releases the left button at (x, y) over two frames.
func (r *rig) click(x, y int) {
	r.frame(x, y, true)
	r.frame(x, y, false)
}

// spy is a leaf control that counts the passes it takes part in.
type spy struct {
	InteractiveBase

	name     string
	log      *[]string
	layouts  int
	preDraws int
	draws    int
	cleanups int

	onPreDraw func(g *GUI)
}

func newSpy(name string, log *[]string) *spy {
	p := &spy{name: name, log: log}
	p.initBase(p, "spy")
	p.SetExpand(true)
	return p
}

func (p *spy) note(event string) {
	if p.log != nil {
		*p.log = append(*p.log, event+":"+p.name)
	}
}

func (p *spy) Layout(g *GUI, area geom.Rect) {
	if p.place(g, area) {
		p.layouts++
	}
}

func (p *spy) PreDraw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.preDraws++
	p.note("pre")
	if p.onPreDraw != nil {
		p.onPreDraw(g)
	}
}

func (p *spy) Draw(g *GUI) {
	if !p.active(g) {
		return
	}
	p.draws++
	p.note("draw")
}

func (p *spy) Cleanup(*GUI) { p.cleanups++ }
