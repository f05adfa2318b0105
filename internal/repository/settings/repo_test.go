package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/happy-hour-mailer/internal/settings"
)

func setupRepo(t *testing.T, content string) *Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	return NewRepository(path, "")
}

func TestGetSettings(t *testing.T) {
	repo := setupRepo(t, "time: 5pm\npersonality:\n  greeting: [Hi, Hello]\n")

	root, err := repo.GetSettings()
	require.NoError(t, err)

	tm, ok := root.Lookup("time")
	require.True(t, ok)
	assert.Equal(t, "5pm", tm.String())

	p, _ := root.Lookup(DefaultPersonalityKey)
	greeting, ok := p.Lookup("greeting")
	require.True(t, ok)
	assert.Equal(t, settings.KindList, greeting.Kind())
}

func TestGetSettings_MissingPersonality(t *testing.T) {
	repo := setupRepo(t, "time: 5pm\n")

	_, err := repo.GetSettings()
	assert.ErrorIs(t, err, ErrMissingPersonality)
}

func TestGetSettings_PersonalityNotMapping(t *testing.T) {
	repo := setupRepo(t, "personality: grumpy\n")

	_, err := repo.GetSettings()
	assert.ErrorIs(t, err, ErrMissingPersonality)
}

func TestGetSettings_RootNotMapping(t *testing.T) {
	repo := setupRepo(t, "- a\n- b\n")

	_, err := repo.GetSettings()
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestGetSettings_Malformed(t *testing.T) {
	repo := setupRepo(t, "time: [unclosed\n")

	_, err := repo.GetSettings()
	assert.Error(t, err)
}

func TestGetSettings_CustomPersonalityKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("voice:\n  signoff: Cheers\n"), 0o644))

	_, err := NewRepository(path, "voice").GetSettings()
	assert.NoError(t, err)

	_, err = NewRepository(path, "").GetSettings()
	assert.ErrorIs(t, err, ErrMissingPersonality)
}
