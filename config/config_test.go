package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Variants)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	path := writeEnv(t, "TESTGEN_VARIANTS=xoroshiro128pp, xoshiro256ss\n"+
		"TESTGEN_KINDS=jump\n"+
		"TESTGEN_TAGS=short\n"+
		"TESTGEN_OUT={{.Variant}}.txt\n"+
		"UNRELATED=1\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"xoroshiro128pp", "xoshiro256ss"}, cfg.Variants)
	assert.Equal(t, []string{KindJump}, cfg.Kinds)
	assert.Equal(t, "short", cfg.Tags)
	assert.Equal(t, "{{.Variant}}.txt", cfg.Out)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.NoError(t, cfg.Validate())
}

func TestEnvironmentWins(t *testing.T) {
	path := writeEnv(t, "TESTGEN_VARIANTS=xoroshiro128pp\nTESTGEN_LISTEN=:9000\n")
	t.Setenv("TESTGEN_VARIANTS", "xoshiro256pp")
	t.Setenv("TESTGEN_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"xoshiro256pp"}, cfg.Variants)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown variant": func(c *Config) { c.Variants = []string{"pcg32"} },
		"unknown kind":    func(c *Config) { c.Kinds = []string{"next", "skip"} },
		"unknown tags":    func(c *Config) { c.Tags = "rust" },
		"empty out":       func(c *Config) { c.Out = "" },
	}

	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalid, name)
	}
}

func TestDecodeShrinksLists(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(map[string]string{"TESTGEN_KINDS": "next"}, &cfg))
	assert.Equal(t, []string{KindNext}, cfg.Kinds)
}
