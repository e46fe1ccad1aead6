package host

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/oaktree/geom"
	"github.com/OpticalFlyer/oaktree/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

// Renderer draws UI primitives onto the ebiten screen of the current frame.
type Renderer struct {
	target   *ebiten.Image
	textures *Textures
	face     text.Face
}

// NewRenderer returns a renderer using the basic 7x13 bitmap font.
func NewRenderer(textures *Textures) *Renderer {
	return &Renderer{
		textures: textures,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget sets the image drawn to until the next call.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// DrawRectangle fills a rectangle with c.
func (r *Renderer) DrawRectangle(x, y, width, height int, c color.Color) {
	if r.target == nil || width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(width), float32(height), c, false)
}

// DrawTexture draws the region (left, top) of width/scale x height/scale
// file units, stretched to width x height on screen. File units are mapped
// onto the real image size when fileWidth and fileHeight are set.
func (r *Renderer) DrawTexture(x, y, left, top, width, height int, fileWidth, fileHeight, scale float32, texture string, tint color.Color) {
	if r.target == nil || width <= 0 || height <= 0 {
		return
	}
	img, ok := r.textures.Get(texture)
	if !ok {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	bounds := img.Bounds()
	sx, sy := 1.0, 1.0
	if fileWidth > 0 && fileHeight > 0 {
		sx = float64(bounds.Dx()) / float64(fileWidth)
		sy = float64(bounds.Dy()) / float64(fileHeight)
	}

	srcW := float64(width) / float64(scale)
	srcH := float64(height) / float64(scale)
	src := image.Rect(
		int(float64(left)*sx),
		int(float64(top)*sy),
		int(math.Ceil((float64(left)+srcW)*sx)),
		int(math.Ceil((float64(top)+srcH)*sy)),
	).Add(bounds.Min)
	if src.Empty() {
		return
	}

	sub := img.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(src.Dx()), float64(height)/float64(src.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	r.target.DrawImage(sub, op)
}

// DrawText draws s with its top left corner at (x, y).
func (r *Renderer) DrawText(s string, x, y int, c color.Color) {
	if r.target == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.target, s, r.face, op)
}

func (r *Renderer) TextWidth(s string) int {
	w, _ := text.Measure(s, r.face, 0)
	return int(math.Ceil(w))
}

func (r *Renderer) FontHeight() int {
	m := r.face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent))
}

// DrawOutline strokes a one pixel rectangle, used by the debug overlay.
func (r *Renderer) DrawOutline(area geom.Rect, c color.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeRect(r.target, float32(area.X), float32(area.Y),
		float32(area.Width), float32(area.Height), 1, c, false)
}
