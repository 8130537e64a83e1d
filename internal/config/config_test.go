package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Dialogue.MaxWidth)
	assert.Equal(t, 50*time.Millisecond, cfg.Dialogue.CharDelay)
	assert.Equal(t, "http://localhost:8090", cfg.Prover.URL)
	assert.Equal(t, 60*time.Second, cfg.Prover.Timeout)
	assert.Equal(t, "", cfg.Chain.RPCURL)
	assert.Equal(t, "0x09e82Db155798F759D6788c41cd72B047a018355", cfg.VerifierAddress().Hex())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
log:
  level: debug
dialogue:
  max_width: 40
  char_delay: 20ms
prover:
  dev: true
chain:
  rpc_url: http://127.0.0.1:8545
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("DIALOGUE_MAX_WIDTH", "32")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 32, cfg.Dialogue.MaxWidth, "env wins over the file")
	assert.Equal(t, 20*time.Millisecond, cfg.Dialogue.CharDelay)
	assert.True(t, cfg.Prover.Dev)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Chain.RPCURL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	missing := filepath.Join(t.TempDir(), "none.yml")

	t.Run("bad address", func(t *testing.T) {
		t.Setenv("CHAIN_VERIFIER_ADDRESS", "0x1234")
		_, err := Load(missing)
		assert.ErrorContains(t, err, "verifier_address")
	})

	t.Run("zero width", func(t *testing.T) {
		t.Setenv("DIALOGUE_MAX_WIDTH", "0")
		_, err := Load(missing)
		assert.ErrorContains(t, err, "max_width")
	})

	t.Run("relative prover url", func(t *testing.T) {
		t.Setenv("PROVER_URL", "prover:8090")
		_, err := Load(missing)
		assert.ErrorContains(t, err, "prover.url")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
