package host

import (
	"image/color"
	"strconv"

	"github.com/OpticalFlyer/oaktree/item"
	"github.com/OpticalFlyer/oaktree/ui"
)

const itemIconSize = 16

var _ ui.ItemRenderer = (*Items)(nil)

// Items draws item icons from items/<name>.png with the stack count in the
// bottom right corner. Items without an icon get a plain grey square.
type Items struct {
	r *Renderer
}

// NewItems creates an item renderer drawing through r.
func NewItems(r *Renderer) *Items {
	return &Items{r: r}
}

// DrawItem draws the icon of stack and its count.
func (it *Items) DrawItem(stack item.Stack, x, y int) {
	if stack.IsEmpty() {
		return
	}

	icon := "items/" + stack.Item + ".png"
	if _, ok := it.r.textures.Get(icon); ok {
		it.r.DrawTexture(x, y, 0, 0, itemIconSize, itemIconSize, itemIconSize, itemIconSize, 1, icon, color.White)
	} else {
		it.r.DrawRectangle(x+1, y+1, itemIconSize-2, itemIconSize-2, color.RGBA{90, 90, 90, 255})
	}

	if stack.Count > 1 {
		count := strconv.Itoa(stack.Count)
		tx := x + itemIconSize - it.r.TextWidth(count) + 1
		ty := y + itemIconSize - it.r.FontHeight() + 3
		it.r.DrawText(count, tx+1, ty+1, color.RGBA{63, 63, 63, 255})
		it.r.DrawText(count, tx, ty, color.White)
	}
}
