package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve_Prompt(t *testing.T) {
	r := NewResolver().WithPrompt(func() (string, error) { return "s3cret", nil })

	pwd, err := r.Resolve(Source{Kind: KindPrompt})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pwd)

	pwd, err = r.Resolve(Source{})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pwd)
}

func TestResolver_Resolve_PromptError(t *testing.T) {
	r := NewResolver().WithPrompt(func() (string, error) { return "", ErrNotATerminal })

	_, err := r.Resolve(Source{Kind: KindPrompt})
	assert.ErrorIs(t, err, ErrNotATerminal)
}

func TestResolver_Resolve_Env(t *testing.T) {
	env := map[string]string{"SMTP_PASS": "from-env"}
	r := NewResolver().WithGetenv(func(k string) string { return env[k] })

	pwd, err := r.Resolve(Source{Kind: KindEnv, Env: "SMTP_PASS"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", pwd)

	_, err = r.Resolve(Source{Kind: KindEnv, Env: "OTHER"})
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestResolver_Resolve_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "password")
	require.NoError(t, os.WriteFile(path, []byte("from-file\r\nignored\n"), 0o600))

	r := NewResolver()

	pwd, err := r.Resolve(Source{Kind: KindFile, File: path})
	require.NoError(t, err)
	assert.Equal(t, "from-file", pwd)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	_, err = r.Resolve(Source{Kind: KindFile, File: empty})
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = r.Resolve(Source{Kind: KindFile, File: filepath.Join(dir, "missing")})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolver_Resolve_Unknown(t *testing.T) {
	_, err := NewResolver().Resolve(Source{Kind: "vault"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}
