package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skillaudit/skillaudit/internal/domain"
)

const fileName = ".skillaudit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .skillaudit.yaml
// from the corpus root.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .skillaudit.yaml from corpusRoot. Returns DefaultConfig when
// the file does not exist.
func (l *YAMLLoader) Load(corpusRoot string) (domain.AuditConfig, error) {
	data, err := os.ReadFile(filepath.Join(corpusRoot, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.AuditConfig{}, err
	}

	var cfg domain.AuditConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = mergeDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// mergeDefaults fills unset values from DefaultConfig. Explicit values
// always win; list fields replace the defaults entirely when present.
func mergeDefaults(cfg domain.AuditConfig) domain.AuditConfig {
	defaults := domain.DefaultConfig()

	if len(cfg.RequiredFields) == 0 {
		cfg.RequiredFields = defaults.RequiredFields
	}
	if len(cfg.AllowedFields) == 0 {
		cfg.AllowedFields = defaults.AllowedFields
	}
	if len(cfg.AllowedTools) == 0 {
		cfg.AllowedTools = defaults.AllowedTools
	}
	if cfg.WordCount.Min == 0 && cfg.WordCount.Max == 0 {
		cfg.WordCount = defaults.WordCount
	}
	if cfg.MaxDescriptionLength == 0 {
		cfg.MaxDescriptionLength = defaults.MaxDescriptionLength
	}
	if cfg.MaxLineLength == 0 {
		cfg.MaxLineLength = defaults.MaxLineLength
	}
	if cfg.LinkTimeoutSeconds == 0 {
		cfg.LinkTimeoutSeconds = defaults.LinkTimeoutSeconds
	}

	return cfg
}
