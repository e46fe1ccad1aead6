package ui

import (
	"image/color"

	"github.com/OpticalFlyer/oaktree/geom"
)

// Style is a visual treatment drawn into a rectangle.
type Style interface {
	Draw(r Renderer, area geom.Rect)
}

// ColorStyle fills the area with a solid color, optionally surrounded by a
// border of BorderWidth pixels.
type ColorStyle struct {
	Color       color.Color
	BorderColor color.Color
	BorderWidth int
}

// NewColorStyle returns a borderless ColorStyle.
func NewColorStyle(c color.Color) ColorStyle {
	return ColorStyle{Color: c}
}

// Draw fills area, with the border drawn outside it.
func (s ColorStyle) Draw(r Renderer, area geom.Rect) {
	if s.BorderColor != nil && s.BorderWidth > 0 {
		bw := s.BorderWidth
		r.DrawRectangle(area.X-bw, area.Y-bw, area.Width+2*bw, area.Height+2*bw, s.BorderColor)
	}
	if s.Color != nil {
		r.DrawRectangle(area.X, area.Y, area.Width, area.Height, s.Color)
	}
}

// TextureStyle draws a region of a texture file. When Tiled is set the
// region is repeated to cover the area, otherwise it is drawn once and
// cropped to the area.
type TextureStyle struct {
	Texture string

	// Left and Top are the origin of the region in the file.
	Left, Top int
	// TextureWidth and TextureHeight are the size of the region.
	TextureWidth, TextureHeight int
	FileWidth, FileHeight       float32
	Scale                       float32
	Tint                        color.Color
	Tiled                       bool
}

// NewTextureStyle returns a TextureStyle for the given texture with the
// default scale and a white tint.
func NewTextureStyle(texture string) TextureStyle {
	return TextureStyle{
		Texture: texture,
		Scale:   2,
		Tint:    color.White,
	}
}

// Draw crops the texture region to area, or tiles it when Tiled is set.
func (s TextureStyle) Draw(r Renderer, area geom.Rect) {
	if s.TextureWidth <= 0 || s.TextureHeight <= 0 {
		return
	}

	if !s.Tiled {
		w := min(area.Width, s.TextureWidth)
		h := min(area.Height, s.TextureHeight)
		s.drawRegion(r, area.X, area.Y, w, h)
		return
	}

	for y := 0; y < area.Height; y += s.TextureHeight {
		h := min(s.TextureHeight, area.Height-y)
		for x := 0; x < area.Width; x += s.TextureWidth {
			w := min(s.TextureWidth, area.Width-x)
			s.drawRegion(r, area.X+x, area.Y+y, w, h)
		}
	}
}

func (s TextureStyle) drawRegion(r Renderer, x, y, w, h int) {
	tint := s.Tint
	if tint == nil {
		tint = color.White
	}
	r.DrawTexture(x, y, s.Left, s.Top, w, h, s.FileWidth, s.FileHeight, s.Scale, s.Texture, tint)
}
