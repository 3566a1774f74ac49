package domain

import "fmt"

// WordCountRange bounds the body word count checked by the word-count phase.
type WordCountRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// AuditConfig holds the corpus-level tuning knobs read from .skillaudit.yaml.
type AuditConfig struct {
	ExcludePaths         []string       `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
	RequiredFields       []string       `yaml:"required_fields" json:"required_fields"`
	AllowedFields        []string       `yaml:"allowed_fields" json:"allowed_fields"`
	RequiredSections     []string       `yaml:"required_sections" json:"required_sections,omitempty"`
	AllowedTools         []string       `yaml:"allowed_tools" json:"allowed_tools,omitempty"`
	WordCount            WordCountRange `yaml:"word_count" json:"word_count"`
	MaxDescriptionLength int            `yaml:"max_description_length" json:"max_description_length"`
	MaxLineLength        int            `yaml:"max_line_length" json:"max_line_length"`
	LinkTimeoutSeconds   int            `yaml:"link_timeout_seconds" json:"link_timeout_seconds"`
}

// DefaultConfig returns the configuration used when no .skillaudit.yaml exists.
func DefaultConfig() AuditConfig {
	return AuditConfig{
		RequiredFields: []string{"name", "description"},
		AllowedFields: []string{
			"name", "description", "version", "allowed-tools",
			"license", "metadata",
		},
		AllowedTools: []string{
			"Read", "Write", "Edit", "Bash", "Glob", "Grep", "WebFetch",
		},
		WordCount:            WordCountRange{Min: 20, Max: 5000},
		MaxDescriptionLength: 1024,
		MaxLineLength:        120,
		LinkTimeoutSeconds:   5,
	}
}

// Validate catches nonsensical values before they reach the phases.
func (c AuditConfig) Validate() error {
	if c.WordCount.Min < 0 || c.WordCount.Max < 0 {
		return fmt.Errorf("word_count bounds must be non-negative")
	}
	if c.WordCount.Max > 0 && c.WordCount.Min > c.WordCount.Max {
		return fmt.Errorf("word_count.min (%d) exceeds word_count.max (%d)", c.WordCount.Min, c.WordCount.Max)
	}
	if c.MaxDescriptionLength < 0 {
		return fmt.Errorf("max_description_length must be non-negative")
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must be non-negative")
	}
	if c.LinkTimeoutSeconds < 0 {
		return fmt.Errorf("link_timeout_seconds must be non-negative")
	}
	return nil
}
