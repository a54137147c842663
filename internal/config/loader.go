package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigFile = ".i18n-check.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// Path resolution: the path argument if non-empty, then I18N_CHECK_CONFIG,
// then ".i18n-check.yaml" if present. With no file at all, configuration
// comes from ENV + defaults only; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("I18N_CHECK_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = defaultConfigFile
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultLanguages()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
