package presentation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, presentation.DefaultConfig().Validate())
}

func TestLoadConfig_ReferenceFileMatchesDefaults(t *testing.T) {
	cfg, err := presentation.LoadConfig("../../../content/presentation.yaml")
	require.NoError(t, err)
	assert.Equal(t, presentation.DefaultConfig(), cfg)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_unit: 10\nslot_weights:\n  feet: 2\npass:\n  threshold: 40\n"), 0o644))

	cfg, err := presentation.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.BaseUnit)
	assert.Equal(t, 2.0, cfg.SlotWeights[catalog.SlotFeet])
	assert.Equal(t, 0.8, cfg.SlotWeights[catalog.SlotHead], "unlisted keys keep defaults")
	assert.Equal(t, 40.0, cfg.Pass.Threshold)
	assert.Equal(t, 9.0, cfg.Pass.Slope)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_unit: 0\npass: {slope: 0}\ntiers: []\n"), 0o644))

	_, err := presentation.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_unit")
	assert.Contains(t, err.Error(), "pass.slope")
	assert.Contains(t, err.Error(), "tiers must not be empty")

	_, err = presentation.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
