package host

import (
	"fmt"
	_ "image/png"
	"log"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Textures loads texture files in the background and caches them by name.
// A texture that is still loading is simply not drawn.
type Textures struct {
	dir string

	cache   map[string]*ebiten.Image
	cacheMu sync.RWMutex

	loading   map[string]bool
	failed    map[string]bool
	loadingMu sync.Mutex
}

// NewTextures creates a cache that resolves names relative to dir.
func NewTextures(dir string) *Textures {
	return &Textures{
		dir:     dir,
		cache:   make(map[string]*ebiten.Image),
		loading: make(map[string]bool),
		failed:  make(map[string]bool),
	}
}

// Get returns the texture if it is loaded and starts loading it otherwise.
func (t *Textures) Get(name string) (*ebiten.Image, bool) {
	t.cacheMu.RLock()
	img, found := t.cache[name]
	t.cacheMu.RUnlock()
	if found {
		return img, true
	}

	t.loadingMu.Lock()
	defer t.loadingMu.Unlock()
	if !t.loading[name] && !t.failed[name] {
		t.loading[name] = true
		go t.loadAndCache(name)
	}
	return nil, false
}

func (t *Textures) loadAndCache(name string) {
	img, err := loadImage(filepath.Join(t.dir, name))

	t.loadingMu.Lock()
	delete(t.loading, name)
	if err != nil {
		// keep failed names out of the queue so a missing file is not
		// retried every frame
		t.failed[name] = true
	}
	t.loadingMu.Unlock()

	if err != nil {
		log.Printf("Error loading texture %s: %v", name, err)
		return
	}

	t.cacheMu.Lock()
	t.cache[name] = img
	t.cacheMu.Unlock()
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s failed: %w", path, err)
	}
	return img, nil
}
