package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeYAML(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "src/i18n/locales", cfg.LocalesDir)
	assert.Equal(t, ".ts", cfg.FileExt)
	assert.Equal(t, "en", cfg.Reference)
	assert.Equal(t, 20, cfg.Truncate)
	assert.Equal(t, DefaultLanguages(), cfg.Languages)
	assert.Equal(t, "English", cfg.ReferenceName())
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeYAML(t, `
locales_dir: assets/locales
file_ext: .yaml
reference: de
truncate: 5
languages:
  - code: de
    name: German
  - code: fr
    name: French
`))
	require.NoError(t, err)

	assert.Equal(t, "assets/locales", cfg.LocalesDir)
	assert.Equal(t, "de", cfg.Reference)
	assert.Equal(t, 5, cfg.Truncate)
	assert.Equal(t, filepath.Join("assets", "locales", "fr.yaml"), cfg.FilePath("fr"))
	assert.Equal(t, "German", cfg.ReferenceName())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("I18N_LOCALES_DIR", "from/env")
	cfg, err := Load(writeYAML(t, "locales_dir: from/file\n"))
	require.NoError(t, err)
	assert.Equal(t, "from/env", cfg.LocalesDir)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigPathEnv(t *testing.T) {
	path := writeYAML(t, "reference: fr\n")
	t.Setenv("I18N_CHECK_CONFIG", path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Reference)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Reference: "en",
			Truncate:  20,
			Languages: DefaultLanguages(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty language list",
			mutate:  func(c *Config) { c.Languages = nil },
			wantErr: "language list is empty",
		},
		{
			name:    "reference not configured",
			mutate:  func(c *Config) { c.Reference = "ja" },
			wantErr: "reference language",
		},
		{
			name:    "duplicate code",
			mutate:  func(c *Config) { c.Languages = append(c.Languages, Language{Code: "de", Name: "Dupe"}) },
			wantErr: "duplicate language code",
		},
		{
			name:    "language without code",
			mutate:  func(c *Config) { c.Languages = append(c.Languages, Language{Name: "Nameless"}) },
			wantErr: "has no code",
		},
		{
			name:    "non-positive truncate",
			mutate:  func(c *Config) { c.Truncate = 0 },
			wantErr: "truncate must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
