package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	opts := cfg.ParseOptions()
	assert.False(t, opts.Strict)
	assert.True(t, opts.LogWarnings)
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unlambda.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\nlog_warnings: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	opts := cfg.ParseOptions()
	assert.True(t, opts.Strict)
	assert.False(t, opts.LogWarnings)
}

func TestLoadRejectsUnreadableDefaultInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unlambda.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_input: /nonexistent/does/not/exist.unl\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
