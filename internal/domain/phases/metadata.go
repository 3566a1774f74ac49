package phases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// FrontMatter (phase 1) verifies the front matter block carries content and
// the document has a body. Parse failures for unreadable documents are also
// attributed to this phase by the orchestrator.
type FrontMatter struct{}

func (FrontMatter) Number() int      { return 1 }
func (FrontMatter) Name() string     { return "frontmatter" }
func (FrontMatter) Severity() string { return domain.SeverityCritical }
func (FrontMatter) Advice() string {
	return "ensure the skill starts with a --- delimited front matter block followed by body content"
}

func (FrontMatter) Validate(doc *domain.Document) []domain.Issue {
	var issues []domain.Issue
	if len(doc.FieldOrder) == 0 {
		issues = append(issues, domain.Issue{
			Message: "front matter block is empty",
		})
	}
	hasBody := false
	for _, line := range doc.Body {
		if strings.TrimSpace(line) != "" {
			hasBody = true
			break
		}
	}
	if !hasBody {
		issues = append(issues, domain.Issue{
			Message:        "document has no body content after the front matter",
			Recommendation: "add the skill instructions below the closing ---",
		})
	}
	return issues
}

// RequiredFields (phase 2) checks that every configured required front
// matter field is present and non-empty.
type RequiredFields struct {
	Config domain.AuditConfig
}

func (RequiredFields) Number() int      { return 2 }
func (RequiredFields) Name() string     { return "required-fields" }
func (RequiredFields) Severity() string { return domain.SeverityWarning }
func (RequiredFields) Advice() string {
	return "add the missing front matter field"
}

func (p RequiredFields) Validate(doc *domain.Document) []domain.Issue {
	var issues []domain.Issue
	for _, field := range p.Config.RequiredFields {
		if strings.TrimSpace(doc.Field(field)) == "" {
			issues = append(issues, domain.Issue{
				Message:        fmt.Sprintf("missing required field %q", field),
				Recommendation: fmt.Sprintf("add %s: <value> to the front matter", field),
			})
		}
	}
	return issues
}

// UnknownFields (phase 3) flags front matter keys outside the allowed set.
type UnknownFields struct {
	Config domain.AuditConfig
}

func (UnknownFields) Number() int      { return 3 }
func (UnknownFields) Name() string     { return "unknown-fields" }
func (UnknownFields) Severity() string { return domain.SeverityInfo }
func (UnknownFields) Advice() string {
	return "remove the unrecognized field or add it to allowed_fields in .skillaudit.yaml"
}

func (p UnknownFields) Validate(doc *domain.Document) []domain.Issue {
	allowed := make(map[string]bool, len(p.Config.AllowedFields))
	for _, f := range p.Config.AllowedFields {
		allowed[f] = true
	}

	var unknown []string
	for _, key := range doc.FieldOrder {
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("unknown front matter field(s): %s", strings.Join(unknown, ", ")),
		Context: unknown,
	}}
}

// DescriptionLength (phase 9) bounds the description field.
type DescriptionLength struct {
	Config domain.AuditConfig
}

func (DescriptionLength) Number() int      { return 9 }
func (DescriptionLength) Name() string     { return "description-length" }
func (DescriptionLength) Severity() string { return domain.SeverityWarning }
func (DescriptionLength) Advice() string {
	return "tighten the description so discovery stays scannable"
}

func (p DescriptionLength) Validate(doc *domain.Document) []domain.Issue {
	desc := doc.Field("description")
	if desc == "" || p.Config.MaxDescriptionLength == 0 {
		return nil // absence is phase 2's finding
	}
	if len(desc) > p.Config.MaxDescriptionLength {
		return []domain.Issue{{
			Message: fmt.Sprintf("description is %d characters (max %d)",
				len(desc), p.Config.MaxDescriptionLength),
			Context: []string{truncate(desc, 80)},
		}}
	}
	return nil
}

// ToolsField (phase 18) validates the allowed-tools declaration against the
// known tool names. Entries may carry qualifiers, e.g. Bash(git:*).
type ToolsField struct {
	Config domain.AuditConfig
}

func (ToolsField) Number() int      { return 18 }
func (ToolsField) Name() string     { return "tools-field" }
func (ToolsField) Severity() string { return domain.SeverityWarning }
func (ToolsField) Advice() string {
	return "use only known tool names in allowed-tools, comma separated"
}

func (p ToolsField) Validate(doc *domain.Document) []domain.Issue {
	raw := doc.Field("allowed-tools")
	if raw == "" {
		return nil
	}

	known := make(map[string]bool, len(p.Config.AllowedTools))
	for _, t := range p.Config.AllowedTools {
		known[t] = true
	}

	var issues []domain.Issue
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			issues = append(issues, domain.Issue{
				Message: "allowed-tools contains an empty entry",
			})
			continue
		}
		name := entry
		if i := strings.Index(entry, "("); i >= 0 {
			name = entry[:i]
		}
		if !known[name] {
			issues = append(issues, domain.Issue{
				Message: fmt.Sprintf("unknown tool %q in allowed-tools", name),
				Context: []string{entry},
			})
		}
	}
	return issues
}

var semverRe = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// VersionField (phase 19) checks that version, when declared, is semver.
type VersionField struct{}

func (VersionField) Number() int      { return 19 }
func (VersionField) Name() string     { return "version-field" }
func (VersionField) Severity() string { return domain.SeverityInfo }
func (VersionField) Advice() string {
	return "use a MAJOR.MINOR.PATCH version"
}

func (VersionField) Validate(doc *domain.Document) []domain.Issue {
	version := doc.Field("version")
	if version == "" || semverRe.MatchString(version) {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("version %q is not semver", version),
		Context: []string{version},
	}}
}
