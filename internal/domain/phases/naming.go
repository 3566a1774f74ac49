package phases

import (
	"fmt"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// NameFormat (phase 10) enforces kebab-case skill names that match their
// directory. It is fix-capable: the fix rewrites the name field in place.
type NameFormat struct{}

func (NameFormat) Number() int      { return 10 }
func (NameFormat) Name() string     { return "name-format" }
func (NameFormat) Severity() string { return domain.SeverityWarning }
func (NameFormat) Advice() string {
	return "rename the skill to kebab-case matching its directory"
}

func (p NameFormat) Validate(doc *domain.Document) []domain.Issue {
	name := doc.Field("name")
	if name == "" {
		return nil // absence is phase 2's finding
	}

	var issues []domain.Issue
	if !isKebabCase(name) {
		issues = append(issues, domain.Issue{
			Message:        fmt.Sprintf("name %q is not kebab-case", name),
			Recommendation: fmt.Sprintf("rename to %q", p.fixedName(doc)),
		})
	}
	if isKebabCase(doc.Dir) && name != doc.Dir {
		issues = append(issues, domain.Issue{
			Message:        fmt.Sprintf("name %q does not match directory %q", name, doc.Dir),
			Recommendation: fmt.Sprintf("set name to %q", doc.Dir),
		})
	}
	return issues
}

// Fix rewrites the name field to the canonical value: the directory name
// when the directory is already kebab-case, otherwise the kebab-cased
// current name. Either value resolves every issue Validate reports.
func (p NameFormat) Fix(doc *domain.Document) ([]byte, int) {
	issues := p.Validate(doc)
	if len(issues) == 0 {
		return doc.Raw, 0
	}
	fixed := rewriteFrontMatterField(doc.Raw, "name", p.fixedName(doc))
	return fixed, len(issues)
}

func (NameFormat) fixedName(doc *domain.Document) string {
	if isKebabCase(doc.Dir) {
		return doc.Dir
	}
	return toKebabCase(doc.Field("name"))
}

// rewriteFrontMatterField replaces the value of a scalar field inside the
// front matter block, leaving the rest of the file byte-identical.
func rewriteFrontMatterField(raw []byte, key, value string) []byte {
	lines := strings.SplitAfter(string(raw), "\n")
	inFrontMatter := false
	prefix := key + ":"

	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "---" {
			if !inFrontMatter && i == 0 {
				inFrontMatter = true
				continue
			}
			break // closing delimiter
		}
		if !inFrontMatter {
			continue
		}
		if strings.HasPrefix(trimmed, prefix) {
			ending := line[len(trimmed):]
			lines[i] = fmt.Sprintf("%s %s%s", prefix, value, ending)
			break
		}
	}
	return []byte(strings.Join(lines, ""))
}
