package phases

import (
	"fmt"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// HeadingHierarchy (phase 7) checks that heading levels never skip, e.g. a
// #### directly under a ##.
type HeadingHierarchy struct{}

func (HeadingHierarchy) Number() int      { return 7 }
func (HeadingHierarchy) Name() string     { return "heading-hierarchy" }
func (HeadingHierarchy) Severity() string { return domain.SeverityWarning }
func (HeadingHierarchy) Advice() string {
	return "keep heading levels contiguous so the document outline stays navigable"
}

func (HeadingHierarchy) Validate(doc *domain.Document) []domain.Issue {
	var issues []domain.Issue
	prev := 0
	for _, sec := range doc.Sections {
		if prev > 0 && sec.Level > prev+1 {
			issues = append(issues, domain.Issue{
				Message: fmt.Sprintf("heading %q jumps from level %d to %d", sec.Title, prev, sec.Level),
				Context: []string{strings.Repeat("#", sec.Level) + " " + sec.Title},
			})
		}
		prev = sec.Level
	}
	return issues
}

// RequiredSections (phase 8) checks that configured section titles appear.
type RequiredSections struct {
	Config domain.AuditConfig
}

func (RequiredSections) Number() int      { return 8 }
func (RequiredSections) Name() string     { return "required-sections" }
func (RequiredSections) Severity() string { return domain.SeverityWarning }
func (RequiredSections) Advice() string {
	return "add the missing section heading"
}

func (p RequiredSections) Validate(doc *domain.Document) []domain.Issue {
	if len(p.Config.RequiredSections) == 0 {
		return nil
	}

	present := make(map[string]bool, len(doc.Sections))
	for _, sec := range doc.Sections {
		present[strings.ToLower(sec.Title)] = true
	}

	var issues []domain.Issue
	for _, want := range p.Config.RequiredSections {
		if !present[strings.ToLower(want)] {
			issues = append(issues, domain.Issue{
				Message:        fmt.Sprintf("missing required section %q", want),
				Recommendation: fmt.Sprintf("add a %q heading", want),
			})
		}
	}
	return issues
}

// DuplicateHeadings (phase 15) flags repeated heading text at the same level.
type DuplicateHeadings struct{}

func (DuplicateHeadings) Number() int      { return 15 }
func (DuplicateHeadings) Name() string     { return "duplicate-headings" }
func (DuplicateHeadings) Severity() string { return domain.SeverityInfo }
func (DuplicateHeadings) Advice() string {
	return "give each heading distinct text so anchors stay unambiguous"
}

func (DuplicateHeadings) Validate(doc *domain.Document) []domain.Issue {
	seen := make(map[string]bool)
	var issues []domain.Issue
	for _, sec := range doc.Sections {
		key := fmt.Sprintf("%d:%s", sec.Level, strings.ToLower(sec.Title))
		if seen[key] {
			issues = append(issues, domain.Issue{
				Message: fmt.Sprintf("duplicate heading %q at level %d", sec.Title, sec.Level),
			})
			continue
		}
		seen[key] = true
	}
	return issues
}

// CodeFences (phase 16) detects unbalanced fenced code blocks. An unclosed
// fence swallows the rest of the document, so this is critical.
type CodeFences struct{}

func (CodeFences) Number() int      { return 16 }
func (CodeFences) Name() string     { return "code-fences" }
func (CodeFences) Severity() string { return domain.SeverityCritical }
func (CodeFences) Advice() string {
	return "close every ``` fence"
}

func (CodeFences) Validate(doc *domain.Document) []domain.Issue {
	open := 0
	lastFence := ""
	for _, line := range doc.Body {
		if fenceRe.MatchString(strings.TrimSpace(line)) {
			open++
			lastFence = strings.TrimSpace(line)
		}
	}
	if open%2 == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: "unclosed code fence",
		Context: []string{lastFence},
	}}
}
