package reel

import (
	"fmt"
	"math"
	"time"
)

type BackgroundKind string

const (
	ImageBackground    BackgroundKind = "image"
	GradientBackground BackgroundKind = "gradient"
)

// Background is either an image with a URL or a plain gradient.
type Background struct {
	Kind BackgroundKind `yaml:"type" validate:"required,oneof=image gradient"`
	URL  string         `yaml:"url,omitempty" validate:"omitempty,url"`
}

func Image(url string) Background { return Background{Kind: ImageBackground, URL: url} }

func Gradient() Background { return Background{Kind: GradientBackground} }

// Scene covers the half-open interval [Start, End) in seconds.
type Scene struct {
	ID         int        `yaml:"id" validate:"gt=0"`
	Start      float64    `yaml:"start" validate:"gte=0"`
	End        float64    `yaml:"end" validate:"gtfield=Start"`
	Kicker     string     `yaml:"kicker,omitempty"`
	Text       string     `yaml:"text" validate:"required"`
	Background Background `yaml:"background"`
}

type Reel struct {
	Title         string  `yaml:"title"`
	TotalDuration float64 `yaml:"total_duration" validate:"gt=0"`
	AudioURL      string  `yaml:"audio_url,omitempty" validate:"omitempty,url"`
	CTA           string  `yaml:"cta,omitempty"`
	Scenes        []Scene `yaml:"scenes" validate:"required,min=1,dive"`
}

// Duration returns TotalDuration as a time.Duration.
func (r *Reel) Duration() time.Duration {
	return time.Duration(r.TotalDuration * float64(time.Second))
}

// ActiveIndex returns the index of the scene whose interval contains t,
// or -1 when none does. Nothing is active at or past the total duration.
func (r *Reel) ActiveIndex(t float64) int {
	if t >= r.TotalDuration {
		return -1
	}
	for i, s := range r.Scenes {
		if t >= s.Start && t < s.End {
			return i
		}
	}
	return -1
}

// Active returns the scene containing t, if any.
func (r *Reel) Active(t float64) (Scene, bool) {
	i := r.ActiveIndex(t)
	if i < 0 {
		return Scene{}, false
	}
	return r.Scenes[i], true
}

// SceneProgress is how far t is through s, as a percentage in [0, 100].
func SceneProgress(s Scene, t float64) float64 {
	if t <= s.Start {
		return 0
	}
	if t >= s.End {
		return 100
	}
	p := (t - s.Start) / (s.End - s.Start) * 100
	return math.Max(0, math.Min(100, p))
}

// Progress returns SceneProgress for every scene, in order.
func (r *Reel) Progress(t float64) []float64 {
	out := make([]float64, len(r.Scenes))
	for i, s := range r.Scenes {
		out[i] = SceneProgress(s, t)
	}
	return out
}

// Badge renders the time label shown in the corner, e.g. "00:05 / 00:17".
// The current second is truncated and zero padded; the total is not padded.
func (r *Reel) Badge(t float64) string {
	return fmt.Sprintf("00:%02d / 00:%d", int(math.Floor(t)), int(r.TotalDuration))
}
