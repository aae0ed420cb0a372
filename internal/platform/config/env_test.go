package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Rounds int    `env:"SEATPLAN_TEST_ROUNDS" envDefault:"4"`
	Format string `env:"SEATPLAN_TEST_FORMAT" envDefault:"table"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 4, cfg.Rounds)
	assert.Equal(t, "table", cfg.Format)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SEATPLAN_TEST_ROUNDS", "7")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 7, cfg.Rounds)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SEATPLAN_TEST_ROUNDS", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

type yamlTestConfig struct {
	Attendees int `yaml:"attendees"`
	Tables    int `yaml:"tables"`
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attendees: 20\ntables: 4\n"), 0o600))

	var cfg yamlTestConfig
	require.NoError(t, LoadYAML(path, &cfg))
	assert.Equal(t, yamlTestConfig{Attendees: 20, Tables: 4}, cfg)
}

func TestLoadYAMLErrors(t *testing.T) {
	dir := t.TempDir()

	var cfg yamlTestConfig
	assert.ErrorIs(t, LoadYAML(filepath.Join(dir, "missing.yaml"), &cfg), os.ErrNotExist)

	path := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("atendees: 20\n"), 0o600))
	err := LoadYAML(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}
