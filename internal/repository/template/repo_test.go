package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email.txt")
	require.NoError(t, os.WriteFile(path, []byte("Meet at $location\n"), 0o644))

	text, err := NewRepository(path).GetTemplate()
	require.NoError(t, err)
	assert.Equal(t, "Meet at $location\n", text)
}

func TestGetTemplate_MissingFile(t *testing.T) {
	_, err := NewRepository(filepath.Join(t.TempDir(), "none.txt")).GetTemplate()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
