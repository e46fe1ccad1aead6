package ui

// MouseButtonEvent is the per-frame state of one mouse button.
type MouseButtonEvent struct {
	Button      MouseButton
	JustPressed bool
	Released    bool
	X, Y        int
}

// MouseButtonListener receives mouse button state once per frame, before
// the layout pass.
type MouseButtonListener interface {
	OnMouseButton(g *GUI, e MouseButtonEvent)
}

// Listeners is the registry of input listeners owned by a GUI. It lives
// exactly as long as the GUI; Close clears it.
type Listeners struct {
	mouse []MouseButtonListener
}

// AddMouseButton registers l. Adding a listener twice has no effect.
func (ls *Listeners) AddMouseButton(l MouseButtonListener) {
	for _, existing := range ls.mouse {
		if existing == l {
			return
		}
	}
	ls.mouse = append(ls.mouse, l)
}

// RemoveMouseButton unregisters l.
func (ls *Listeners) RemoveMouseButton(l MouseButtonListener) {
	for i, existing := range ls.mouse {
		if existing == l {
			ls.mouse = append(ls.mouse[:i], ls.mouse[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (ls *Listeners) Len() int {
	return len(ls.mouse)
}

// Clear drops every listener.
func (ls *Listeners) Clear() {
	clear(ls.mouse)
	ls.mouse = ls.mouse[:0]
}

func (ls *Listeners) dispatchMouseButton(g *GUI, e MouseButtonEvent) {
	// listeners may unregister themselves while handling the event
	snapshot := append([]MouseButtonListener(nil), ls.mouse...)
	for _, l := range snapshot {
		l.OnMouseButton(g, e)
	}
}
