package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultFPS    = 60
	DefaultWidth  = 34
	DefaultHeight = 22
)

type Config struct {
	ReelPath string
	AudioURL string
	LogPath  string
	FPS      int
	Width    int
	Height   int
	Muted    bool
	Help     bool
	Version  bool
}

// Load builds a Config from an optional .env file, STORYREEL_*
// environment variables and command line flags, in increasing order of
// precedence.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		AudioURL: os.Getenv("STORYREEL_AUDIO_URL"),
		LogPath:  os.Getenv("STORYREEL_LOG"),
		FPS:      DefaultFPS,
		Muted:    true,
	}

	if v := os.Getenv("STORYREEL_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STORYREEL_FPS %q: %w", v, err)
		}
		cfg.FPS = fps
	}

	var sound bool
	fs.StringVar(&cfg.ReelPath, "reel", "", "YAML file describing the reel (built-in reel if empty)")
	fs.StringVar(&cfg.AudioURL, "audio", cfg.AudioURL, "Background audio file or URL, overrides the reel's own")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Write JSON logs to this file")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	fs.IntVar(&cfg.Width, "width", 0, "Frame width in cells (fit to terminal if 0)")
	fs.IntVar(&cfg.Height, "height", 0, "Frame height in cells (fit to terminal if 0)")
	fs.BoolVar(&sound, "sound", false, "Start with sound enabled")
	fs.BoolVar(&cfg.Help, "help", false, "Show usage info")
	fs.BoolVar(&cfg.Version, "version", false, "Show version info")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Muted = !sound

	if cfg.FPS < 1 || cfg.FPS > 240 {
		return nil, fmt.Errorf("fps must be between 1 and 240, got %d", cfg.FPS)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, errors.New("width and height must not be negative")
	}

	return cfg, nil
}

// FitFrame picks the frame size: explicit flags win, otherwise the
// default phone shape shrunk to fit a termWidth x termHeight terminal.
func (c *Config) FitFrame(termWidth, termHeight int) (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = DefaultWidth
		if termWidth > 0 && termWidth-2 < w {
			w = termWidth - 2
		}
	}
	if h == 0 {
		h = DefaultHeight
		// leave room for the help line
		if termHeight > 0 && termHeight-4 < h {
			h = termHeight - 4
		}
	}
	return max(w, 16), max(h, 8)
}

// LogOutput opens the configured log file, or returns io.Discard.
func (c *Config) LogOutput() (io.WriteCloser, error) {
	if c.LogPath == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
