package host

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/oaktree/ui"
)

// Backend bundles the ebiten implementations of the GUI collaborators.
type Backend struct {
	Textures *Textures
	Renderer *Renderer
	Input    *Input
	Screen   *Screen
	Sound    *Sound
	Items    *Items
}

// NewBackend creates the ebiten collaborators described by cfg.
func NewBackend(cfg Config) *Backend {
	textures := NewTextures(cfg.AssetDir)
	renderer := NewRenderer(textures)
	return &Backend{
		Textures: textures,
		Renderer: renderer,
		Input:    &Input{},
		Screen:   &Screen{width: cfg.Width, height: cfg.Height},
		Sound:    NewSound(cfg.SampleRate, cfg.AssetDir),
		Items:    NewItems(renderer),
	}
}

// Host returns a ui.Host backed by b. handlers and sync come from the game
// and may be nil.
func (b *Backend) Host(handlers ui.ScreenHandlerSource, sync ui.StackSyncer) ui.Host {
	return ui.Host{
		Renderer: b.Renderer,
		Input:    b.Input,
		Screen:   b.Screen,
		Sound:    b.Sound,
		Items:    b.Items,
		Sync:     sync,
		Handlers: handlers,
	}
}

// Game implements ebiten.Game for a single GUI screen.
type Game struct {
	backend   *Backend
	gui       *ui.GUI
	debugMode bool
	lastFrame time.Time
}

// NewGame creates a game running gui on backend.
func NewGame(backend *Backend, gui *ui.GUI) *Game {
	return &Game{
		backend: backend,
		gui:     gui,
	}
}

// Update collects input and closes the GUI when the window closes.
func (g *Game) Update() error {
	g.backend.Input.collect()

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.gui.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	return nil
}

// Draw runs one GUI frame onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	var delta float32
	if !g.lastFrame.IsZero() {
		delta = float32(now.Sub(g.lastFrame).Seconds())
	}
	g.lastFrame = now

	g.backend.Renderer.SetTarget(screen)
	g.gui.Frame(delta)

	if g.debugMode {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	red := color.RGBA{R: 255, A: 255}
	if c := g.gui.Captured(); c != nil {
		g.backend.Renderer.DrawOutline(c.Node().TrueArea(), red)
	}

	cw, ch := g.backend.Screen.ContentSize()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nControls: %d\nRoot: %dx%d\nListeners: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.gui.ZIndex()), cw, ch, g.gui.Listeners().Len()))
}

// Layout reports the outside size to the GUI screen unchanged.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Screen.setLayout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window described by cfg and runs game until it closes.
func Run(cfg Config, game *Game) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running %s failed: %w", cfg.Title, err)
	}
	return nil
}
