package template

import (
	"fmt"
	"os"
)

// Repository reads the email template from disk.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// GetTemplate returns the raw template text.
func (r *Repository) GetTemplate() (string, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	return string(b), nil
}
