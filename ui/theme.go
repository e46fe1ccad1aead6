package ui

import "image/color"

// State names used for style lookup.
const (
	StateBase      = "base"
	StateHover     = "hover"
	StateHeld      = "held"
	StateSlider    = "slider"
	StateHighlight = "highlight"
)

type themeKey struct {
	id, state string
}

// Theme maps a control id and a state name to a Style. A Theme is a value:
// With returns a new theme and never changes the receiver, so a theme can
// be shared across the tree and swapped between frames.
type Theme struct {
	styles map[themeKey]Style
}

// NewTheme returns an empty theme.
func NewTheme() Theme {
	return Theme{}
}

// With returns a copy of t with style bound to (id, state).
func (t Theme) With(id, state string, style Style) Theme {
	styles := make(map[themeKey]Style, len(t.styles)+1)
	for k, v := range t.styles {
		styles[k] = v
	}
	styles[themeKey{id, normalizeState(state)}] = style
	return Theme{styles: styles}
}

// Style returns the style bound to (id, state), if any.
func (t Theme) Style(id, state string) (Style, bool) {
	s, ok := t.styles[themeKey{id, normalizeState(state)}]
	return s, ok && s != nil
}

// Len returns the number of bindings in t.
func (t Theme) Len() int {
	return len(t.styles)
}

// "default" is accepted as an alias of the base state.
func normalizeState(state string) string {
	if state == "default" || state == "" {
		return StateBase
	}
	return state
}

// Vanilla returns the built-in grey theme.
func Vanilla() Theme {
	var (
		panel     = color.RGBA{198, 198, 198, 255}
		dark      = color.RGBA{55, 55, 55, 255}
		button    = color.RGBA{110, 110, 110, 255}
		hovered   = color.RGBA{126, 136, 191, 255}
		held      = color.RGBA{80, 80, 80, 255}
		slot      = color.RGBA{139, 139, 139, 255}
		highlight = color.RGBA{191, 191, 191, 128}
		tooltip   = color.RGBA{16, 0, 16, 240}
		border    = color.RGBA{40, 0, 127, 255}
	)

	return NewTheme().
		With(idPanel, StateBase, ColorStyle{Color: panel, BorderColor: dark, BorderWidth: 1}).
		With(idButton, StateBase, ColorStyle{Color: button, BorderColor: dark, BorderWidth: 1}).
		With(idButton, StateHover, ColorStyle{Color: hovered, BorderColor: color.White, BorderWidth: 1}).
		With(idButton, StateHeld, ColorStyle{Color: held, BorderColor: dark, BorderWidth: 1}).
		With(idSlider, StateBase, NewColorStyle(dark)).
		With(idSlider, StateSlider, ColorStyle{Color: button, BorderColor: color.White, BorderWidth: 1}).
		With(idSlot, StateBase, NewColorStyle(slot)).
		With(idSlot, StateHighlight, NewColorStyle(highlight)).
		With(idTooltip, StateBase, ColorStyle{Color: tooltip, BorderColor: border, BorderWidth: 1})
}
