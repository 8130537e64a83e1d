package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScripts(t *testing.T) {
	s := DefaultScripts()
	assert.Contains(t, s.Intro.Text, "Welcome to the game!")
	assert.Equal(t, "Press Enter to start...", s.Intro.Prompt)
	assert.Equal(t, "Press Enter to start the challenge...", s.Challenge.Prompt)
	assert.NotEmpty(t, s.Challenge.Reactions.Success)
	assert.NotEmpty(t, s.Challenge.Reactions.Failure)
	assert.Equal(t, s.Challenge, s.For(Challenge))
}

func TestLoadScriptsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts.yaml")
	raw := `
intro:
  text: Hello there.
  prompt: Go!
challenge:
  text: Fight me.
  prompt: Begin!
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s, err := LoadScripts(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", s.Intro.Text)
	assert.Equal(t, "Begin!", s.Challenge.Prompt)
	assert.Empty(t, s.Challenge.Reactions.Success)

	def, err := LoadScripts("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScripts(), def)

	_, err = LoadScripts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseScriptsValidates(t *testing.T) {
	_, err := ParseScripts([]byte("intro: [not, a, map]"))
	assert.ErrorIs(t, err, ErrInvalidScript)

	_, err = ParseScripts([]byte("intro:\n  text: hi\n  prompt: go\nchallenge:\n  text: fight\n"))
	assert.ErrorIs(t, err, ErrInvalidScript)
}
