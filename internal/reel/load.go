package reel

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Load reads a reel from a YAML file and validates it.
func Load(path string) (*Reel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reel: %w", err)
	}

	var r Reel
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse reel: %w", err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Write saves r as YAML.
func Write(r *Reel, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints and that the scenes tile
// [0, TotalDuration) with no gaps or overlaps.
func (r *Reel) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid reel: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid reel: %w", err)
	}

	seen := make(map[int]bool, len(r.Scenes))
	for i, s := range r.Scenes {
		if seen[s.ID] {
			return fmt.Errorf("invalid reel: duplicate scene id %d", s.ID)
		}
		seen[s.ID] = true

		if s.Background.Kind == ImageBackground && s.Background.URL == "" {
			return fmt.Errorf("invalid reel: scene %d has an image background without a url", s.ID)
		}

		if i == 0 {
			if s.Start != 0 {
				return fmt.Errorf("invalid reel: first scene starts at %g, want 0", s.Start)
			}
			continue
		}
		if prev := r.Scenes[i-1]; prev.End != s.Start {
			return fmt.Errorf("invalid reel: scene %d ends at %g but scene %d starts at %g", prev.ID, prev.End, s.ID, s.Start)
		}
	}

	if last := r.Scenes[len(r.Scenes)-1]; last.End != r.TotalDuration {
		return fmt.Errorf("invalid reel: last scene ends at %g, want total duration %g", last.End, r.TotalDuration)
	}

	return nil
}
