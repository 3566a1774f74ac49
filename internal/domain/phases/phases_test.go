package phases

import (
	"strings"
	"testing"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// buildDoc constructs a Document from raw file content the way the parser
// would: front matter as simple key: value lines, body as everything after
// the closing delimiter, headings collected into sections. Keeping the
// raw-to-body line offset faithful matters for the fix tests.
func buildDoc(t *testing.T, name, dir string, raw string) *domain.Document {
	t.Helper()

	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		t.Fatalf("fixture for %s must open with front matter", name)
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		t.Fatalf("fixture for %s has no closing front matter delimiter", name)
	}

	fields := make(map[string]string)
	var order []string
	for _, line := range lines[1:closing] {
		line = strings.TrimRight(line, "\r")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		fields[key] = strings.TrimSpace(value)
		order = append(order, key)
	}

	body := make([]string, 0, len(lines)-closing-1)
	for _, line := range lines[closing+1:] {
		body = append(body, strings.TrimRight(line, "\r"))
	}

	var sections []domain.Section
	mask := fenceMask(body)
	for i, line := range body {
		if mask[i] || !strings.HasPrefix(line, "#") {
			continue
		}
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level > 6 || level >= len(line) || line[level] != ' ' {
			continue
		}
		sections = append(sections, domain.Section{
			Level: level,
			Title: strings.TrimSpace(line[level:]),
		})
	}

	docName := fields["name"]
	if docName == "" {
		docName = name
	}
	return &domain.Document{
		Name:       docName,
		Dir:        dir,
		Path:       dir + "/SKILL.md",
		Fields:     fields,
		FieldOrder: order,
		Sections:   sections,
		Body:       body,
		Raw:        []byte(raw),
	}
}
