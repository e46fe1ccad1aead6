package host

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/OpticalFlyer/oaktree/ui"
)

var _ ui.SoundPlayer = (*Sound)(nil)

// Sound plays short UI sounds from wav files named after the sound, so
// "ui.button.click" is read from <dir>/ui.button.click.wav.
type Sound struct {
	ctx   *audio.Context
	dir   string
	clips map[string][]byte
}

// NewSound creates a player reading wav files from dir.
func NewSound(sampleRate int, dir string) *Sound {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Sound{
		ctx:   ctx,
		dir:   dir,
		clips: make(map[string][]byte),
	}
}

// Load decodes and caches the named sound.
func (s *Sound) Load(name string) error {
	path := filepath.Join(s.dir, name+".wav")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s failed: %w", path, err)
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(s.ctx.SampleRate(), f)
	if err != nil {
		return fmt.Errorf("decoding %s failed: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("reading %s failed: %w", path, err)
	}

	s.clips[name] = pcm
	return nil
}

// Play starts the named sound, loading it on first use.
func (s *Sound) Play(name string) {
	pcm, ok := s.clips[name]
	if !ok {
		if err := s.Load(name); err != nil {
			log.Printf("Error loading sound %s: %v", name, err)
			// remember the miss so the file is not read again on every click
			s.clips[name] = nil
			return
		}
		pcm = s.clips[name]
	}
	if len(pcm) == 0 {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
