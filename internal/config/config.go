// Package config holds the checker configuration: which languages exist,
// where their locale files live, and which language is the reference.
package config

import (
	"fmt"
	"path/filepath"
)

// Language pairs a locale code with its display name.
type Language struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Config describes a project's locale layout. Language order is report order.
type Config struct {
	LocalesDir string     `yaml:"locales_dir" env:"I18N_LOCALES_DIR" env-default:"src/i18n/locales"`
	FileExt    string     `yaml:"file_ext"    env:"I18N_FILE_EXT"    env-default:".ts"`
	Reference  string     `yaml:"reference"   env:"I18N_REFERENCE"   env-default:"en"`
	Truncate   int        `yaml:"truncate"    env:"I18N_TRUNCATE"    env-default:"20"`
	Languages  []Language `yaml:"languages"`
}

// DefaultLanguages is the language table used when the config declares
// none. The reference language comes first.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "de", Name: "German"},
		{Code: "es", Name: "Spanish"},
		{Code: "fr", Name: "French"},
		{Code: "zh", Name: "Chinese"},
	}
}

// FilePath returns the expected locale file path for a language code.
func (c *Config) FilePath(code string) string {
	return filepath.Join(c.LocalesDir, code+c.FileExt)
}

// ReferenceName returns the display name of the reference language,
// falling back to its code.
func (c *Config) ReferenceName() string {
	for _, l := range c.Languages {
		if l.Code == c.Reference {
			return l.Name
		}
	}
	return c.Reference
}

// Validate checks internal consistency of the configuration.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("language list is empty")
	}
	seen := make(map[string]bool, len(c.Languages))
	for _, l := range c.Languages {
		if l.Code == "" {
			return fmt.Errorf("language entry %q has no code", l.Name)
		}
		if seen[l.Code] {
			return fmt.Errorf("duplicate language code %q", l.Code)
		}
		seen[l.Code] = true
	}
	if !seen[c.Reference] {
		return fmt.Errorf("reference language %q is not in the language list", c.Reference)
	}
	if c.Truncate <= 0 {
		return fmt.Errorf("truncate must be positive, got %d", c.Truncate)
	}
	return nil
}
