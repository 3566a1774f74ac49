package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// SkillParser implements domain.DocumentParser for SKILL.md files:
// a --- delimited YAML front matter block followed by a markdown body.
type SkillParser struct{}

func New() *SkillParser {
	return &SkillParser{}
}

// Parse reads and parses one skill file. The returned Document keeps the
// original raw bytes so hygiene phases and fixers can inspect the exact
// on-disk form.
func (p *SkillParser) Parse(path string) (*domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) == 0 || strings.TrimSpace(strings.TrimSuffix(lines[0], "\r")) != "---" {
		return nil, fmt.Errorf("%s: missing front matter opening delimiter", path)
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(strings.TrimSuffix(lines[i], "\r")) == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, fmt.Errorf("%s: front matter is never closed", path)
	}

	frontMatter := strings.Join(lines[1:closing], "\n")
	fields, order, err := parseFields(frontMatter)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing front matter: %w", path, err)
	}

	// Body spans everything after the closing delimiter. The raw-line to
	// body-line offset (closing+1) is relied upon by fixers.
	body := make([]string, len(lines)-closing-1)
	for i, line := range lines[closing+1:] {
		body[i] = strings.TrimSuffix(line, "\r")
	}

	dir := filepath.Base(filepath.Dir(path))
	name := fields["name"]
	if name == "" {
		name = dir
	}

	return &domain.Document{
		Name:       name,
		Dir:        dir,
		Path:       path,
		Fields:     fields,
		FieldOrder: order,
		Sections:   parseSections(body),
		Body:       body,
		Raw:        raw,
	}, nil
}

// parseFields decodes the front matter YAML, preserving key order and
// flattening values to strings.
func parseFields(frontMatter string) (map[string]string, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(frontMatter), &root); err != nil {
		return nil, nil, err
	}

	fields := make(map[string]string)
	var order []string

	if len(root.Content) == 0 {
		return fields, order, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("front matter is not a mapping")
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if _, dup := fields[key]; dup {
			return nil, nil, fmt.Errorf("duplicate front matter key %q", key)
		}
		fields[key] = flattenValue(mapping.Content[i+1])
		order = append(order, key)
	}
	return fields, order, nil
}

func flattenValue(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, c := range node.Content {
			parts = append(parts, flattenValue(c))
		}
		return strings.Join(parts, ", ")
	case yaml.MappingNode:
		parts := make([]string, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			parts = append(parts, node.Content[i].Value+": "+flattenValue(node.Content[i+1]))
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// parseSections splits the body into ATX-heading sections, ignoring
// headings inside fenced code blocks.
func parseSections(body []string) []domain.Section {
	var sections []domain.Section
	inFence := false

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			if len(sections) > 0 {
				last := &sections[len(sections)-1]
				last.Lines = append(last.Lines, line)
			}
			continue
		}

		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		title := strings.TrimSpace(trimmed[level:])
		if level > 6 || title == "" {
			continue
		}
		sections = append(sections, domain.Section{Level: level, Title: title})
	}
	return sections
}
