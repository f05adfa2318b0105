package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/happy-hour-mailer/internal/settings"
)

// DefaultPersonalityKey names the nested mapping of phrase alternatives.
const DefaultPersonalityKey = "personality"

var (
	ErrInvalidSettings    = errors.New("settings root must be a mapping")
	ErrMissingPersonality = errors.New("settings must define a personality mapping")
)

// Repository reads the YAML settings document.
type Repository struct {
	path           string
	personalityKey string
}

func NewRepository(path, personalityKey string) *Repository {
	if personalityKey == "" {
		personalityKey = DefaultPersonalityKey
	}
	return &Repository{path: path, personalityKey: personalityKey}
}

// GetSettings decodes the settings file. The result is always a mapping that
// holds a personality mapping.
func (r *Repository) GetSettings() (settings.Value, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return settings.Value{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var root settings.Value
	if err := yaml.Unmarshal(b, &root); err != nil {
		return settings.Value{}, fmt.Errorf("failed to parse settings %s: %w", r.path, err)
	}

	if root.Kind() != settings.KindMap {
		return settings.Value{}, ErrInvalidSettings
	}

	if p, ok := root.Lookup(r.personalityKey); !ok || p.Kind() != settings.KindMap {
		return settings.Value{}, ErrMissingPersonality
	}

	return root, nil
}
