package host

// Config holds the window and asset settings of the ebiten backend.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool

	// SampleRate of the audio context used for UI sounds.
	SampleRate int
	// AssetDir is the root for texture and sound files.
	AssetDir string
}

// DefaultConfig returns the settings used by the demo screen.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "Oaktree",
		Resizable:  true,
		SampleRate: 44100,
		AssetDir:   "assets",
	}
}
