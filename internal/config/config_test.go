package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.Engine.CaseSensitive)
	assert.Equal(t, 2, cfg.Engine.MinSets)
	assert.Equal(t, venn.MaxLayoutSets, cfg.Engine.MaxSets)
	assert.True(t, cfg.Engine.AllowEmptySets)
	assert.Equal(t, venn.LayoutApproximate, cfg.Policy())
	assert.InDelta(t, 0.45, cfg.Style.Alpha, 1e-9)
	assert.InDelta(t, 1.12, cfg.Style.LabelHeight, 1e-9)
	assert.Equal(t, "Venn_Outputs", cfg.Output.DirName)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min_sets below 2", func(c *Config) { c.Engine.MinSets = 1 }},
		{"max below min", func(c *Config) { c.Engine.MaxSets = 2; c.Engine.MinSets = 3 }},
		{"max beyond templates", func(c *Config) { c.Engine.MaxSets = 9 }},
		{"unknown policy", func(c *Config) { c.Engine.LayoutPolicy = "proportional" }},
		{"alpha above 1", func(c *Config) { c.Style.Alpha = 1.5 }},
		{"label height too low", func(c *Config) { c.Style.LabelHeight = 0.5 }},
		{"tiny canvas", func(c *Config) { c.Style.Width = 10 }},
		{"no colors", func(c *Config) { c.Style.Colors = nil }},
		{"empty output dir", func(c *Config) { c.Output.DirName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, venn.IsConfigurationError(err))
		})
	}
}

func TestLoaderDefaultsWithoutFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.yaml"))

	// Explicit path that does not exist is still tolerated by viper only
	// when searching; a named missing file errors.
	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoaderReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genevenn.yaml")
	content := []byte("engine:\n  layout_policy: reject\n  case_sensitive: true\nstyle:\n  alpha: 0.6\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, venn.LayoutReject, cfg.Policy())
	assert.True(t, cfg.Engine.CaseSensitive)
	assert.InDelta(t, 0.6, cfg.Style.Alpha, 1e-9)
	// Untouched values keep their defaults.
	assert.Equal(t, 2, cfg.Engine.MinSets)
	assert.InDelta(t, 1.12, cfg.Style.LabelHeight, 1e-9)
}

func TestLoaderRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genevenn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  layout_policy: nope\n"), 0o644))

	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.True(t, venn.IsConfigurationError(err))
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.AllowEmptySets = false
	cfg.Engine.MaxSets = 3

	opts := cfg.EngineOptions()
	assert.Equal(t, 2, opts.MinSets)
	assert.Equal(t, 3, opts.MaxSets)
	assert.False(t, opts.AllowEmptySets)
}
