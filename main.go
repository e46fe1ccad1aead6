package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/OpticalFlyer/oaktree/geom"
	"github.com/OpticalFlyer/oaktree/host"
	"github.com/OpticalFlyer/oaktree/inventory"
	"github.com/OpticalFlyer/oaktree/item"
	"github.com/OpticalFlyer/oaktree/ui"
)

// Constants for the demo screen
const (
	chestID     = 0
	playerID    = 1
	chestSlots  = 9
	playerSlots = 27
	slotColumns = 9
	syncID      = 1
)

func buildInventory() (*inventory.Handler, *inventory.Active) {
	chest := inventory.New(chestSlots)
	chest.SetStack(0, item.New("stone", 32))
	chest.SetStack(1, item.New("dirt", 64))
	chest.SetStack(4, item.Stack{Item: "wool", Meta: "red", Count: 5, MaxCount: 64})

	player := inventory.New(playerSlots)
	player.SetStack(0, item.Stack{Item: "apple", Count: 3, MaxCount: 16})

	handler := inventory.NewHandler(syncID)
	handler.Add(chestID, chest)
	handler.Add(playerID, player)

	active := &inventory.Active{}
	active.Open(handler)
	return handler, active
}

func slotGrid(inventoryID, count int) *ui.Panel {
	grid := ui.NewPanel()
	grid.SetID("slot_grid")
	rows := (count + slotColumns - 1) / slotColumns
	grid.SetSize(slotColumns*18, rows*18)
	grid.SetAnchor(geom.TopCenter)
	for i := 0; i < count; i++ {
		s := ui.NewSlot(i, inventoryID)
		s.SetPosition((i%slotColumns)*18, (i/slotColumns)*18)
		grid.Add(s)
	}
	return grid
}

func buildControlsPage(status *ui.Label) *ui.Panel {
	page := ui.NewPanel()
	page.SetID("page")
	page.SetExpand(true)

	counter := 0
	click := ui.NewButton("Click me")
	click.SetPosition(10, 10)
	click.OnClick(func(*ui.GUI, *ui.Button) {
		counter++
		status.SetText(fmt.Sprintf("Clicked %d times", counter))
	})

	toggle := ui.NewButton("Toggle")
	toggle.SetPosition(10, 40)
	toggle.SetToggleable(true)
	toggle.OnClick(func(*ui.GUI, *ui.Button) { status.SetText("Toggle on") })
	toggle.OnRelease(func(*ui.GUI, *ui.Button) { status.SetText("Toggle off") })

	slider := ui.NewSlider(true)
	slider.SetPosition(10, 70)
	slider.SetSize(110, 10)
	slider.SetBarLength(10)
	slider.OnSlide(func(_ *ui.GUI, s *ui.Slider) {
		status.SetText(fmt.Sprintf("Slider at %.0f%%", s.ScrollPercent()))
	})

	hover := ui.NewHover()
	hover.SetPosition(10, 90)
	hover.SetSize(100, 20)
	hover.SetStyle(ui.StateBase, ui.NewColorStyle(color.RGBA{60, 90, 60, 255}))
	hover.SetHoverStyle(ui.NewColorStyle(color.RGBA{90, 160, 90, 255}))
	hover.OnMouseEnter(func(*ui.GUI, *ui.Hover) { status.SetText("Hovering") })
	hover.OnMouseExit(func(*ui.GUI, *ui.Hover) { status.SetText("") })

	page.Add(click, toggle, slider, hover)
	return page
}

func buildInventoryPage() *ui.Panel {
	page := ui.NewPanel()
	page.SetID("page")
	page.SetExpand(true)

	chest := slotGrid(chestID, chestSlots)
	chest.SetPosition(0, 10)

	player := slotGrid(playerID, playerSlots)
	player.SetPosition(0, 40)

	// the chest only takes building blocks
	for _, c := range chest.Children() {
		c.(*ui.Slot).Filter("stone", "dirt", "wool")
	}

	page.Add(chest, player)
	return page
}

func buildRoot() *ui.Panel {
	root := ui.NewPanel()
	root.SetSize(360, 220)
	root.SetAnchor(geom.Center)
	root.SetMargin(6)

	status := ui.NewLabel("")
	status.SetFitText(true)
	status.SetAnchor(geom.BottomLeft)

	pages := ui.NewPagePanel()
	pages.SetExpand(true)
	pages.Add(buildControlsPage(status), buildInventoryPage())

	next := ui.NewButton("Next page")
	next.SetAnchor(geom.CenterLeft)
	next.OnClick(func(*ui.GUI, *ui.Button) {
		if pages.Page() == len(pages.Children())-1 {
			pages.SetPage(0)
		} else {
			pages.NextPage()
		}
	})

	sidebar := ui.NewPanel()
	sidebar.SetID("sidebar")
	sidebar.SetExpand(true)
	sidebar.Add(next)

	split := ui.NewSplitBox()
	split.SetExpand(true)
	split.SetSplitPercent(30)
	split.Right().SetMargin(4)
	split.SetLeft(sidebar)
	split.SetRight(pages)

	root.Add(split, status)
	return root
}

func main() {
	cfg := host.DefaultConfig()
	backend := host.NewBackend(cfg)

	_, active := buildInventory()
	gui := ui.New(buildRoot(), backend.Host(active, &inventory.LogSyncer{}))

	if err := host.Run(cfg, host.NewGame(backend, gui)); err != nil {
		log.Fatal(err)
	}
}
