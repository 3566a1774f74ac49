package phases

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// TrailingWhitespace (phase 11) flags and strips trailing spaces and tabs.
type TrailingWhitespace struct{}

func (TrailingWhitespace) Number() int      { return 11 }
func (TrailingWhitespace) Name() string     { return "trailing-whitespace" }
func (TrailingWhitespace) Severity() string { return domain.SeverityInfo }
func (TrailingWhitespace) Advice() string {
	return "strip trailing whitespace (or run fix for phase 11)"
}

func (TrailingWhitespace) Validate(doc *domain.Document) []domain.Issue {
	count := 0
	var context []string
	for i, line := range strings.Split(string(doc.Raw), "\n") {
		content := strings.TrimSuffix(line, "\r")
		if content != strings.TrimRight(content, " \t") {
			count++
			if len(context) < 3 {
				context = append(context, fmt.Sprintf("line %d: %s", i+1, truncate(content, 60)))
			}
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("%d line(s) with trailing whitespace", count),
		Context: context,
	}}
}

func (p TrailingWhitespace) Fix(doc *domain.Document) ([]byte, int) {
	issues := p.Validate(doc)
	if len(issues) == 0 {
		return doc.Raw, 0
	}

	lines := strings.Split(string(doc.Raw), "\n")
	for i, line := range lines {
		content, hadCR := strings.CutSuffix(line, "\r")
		content = strings.TrimRight(content, " \t")
		if hadCR {
			content += "\r"
		}
		lines[i] = content
	}
	return []byte(strings.Join(lines, "\n")), len(issues)
}

// TabIndentation (phase 12) flags hard tabs in prose outside code fences.
type TabIndentation struct{}

func (TabIndentation) Number() int      { return 12 }
func (TabIndentation) Name() string     { return "tab-indentation" }
func (TabIndentation) Severity() string { return domain.SeverityInfo }
func (TabIndentation) Advice() string {
	return "indent prose with spaces (or run fix for phase 12)"
}

func (TabIndentation) Validate(doc *domain.Document) []domain.Issue {
	mask := fenceMask(doc.Body)
	count := 0
	var context []string
	for i, line := range doc.Body {
		if mask[i] || !strings.Contains(line, "\t") {
			continue
		}
		count++
		if len(context) < 3 {
			context = append(context, truncate(strings.ReplaceAll(line, "\t", "→"), 60))
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("%d prose line(s) containing hard tabs", count),
		Context: context,
	}}
}

func (p TabIndentation) Fix(doc *domain.Document) ([]byte, int) {
	issues := p.Validate(doc)
	if len(issues) == 0 {
		return doc.Raw, 0
	}

	lines := strings.Split(string(doc.Raw), "\n")
	offset := len(lines) - len(doc.Body)
	if offset < 0 {
		offset = 0
	}

	mask := fenceMask(doc.Body)
	for i := range doc.Body {
		if mask[i] {
			continue
		}
		raw := offset + i
		if raw < len(lines) {
			lines[raw] = strings.ReplaceAll(lines[raw], "\t", "    ")
		}
	}
	return []byte(strings.Join(lines, "\n")), len(issues)
}

// FinalNewline (phase 13) requires the file to end with exactly one newline.
type FinalNewline struct{}

func (FinalNewline) Number() int      { return 13 }
func (FinalNewline) Name() string     { return "final-newline" }
func (FinalNewline) Severity() string { return domain.SeverityInfo }
func (FinalNewline) Advice() string {
	return "end the file with a single newline (or run fix for phase 13)"
}

func (FinalNewline) Validate(doc *domain.Document) []domain.Issue {
	raw := doc.Raw
	if len(raw) == 0 {
		return nil
	}
	switch {
	case !bytes.HasSuffix(raw, []byte("\n")):
		return []domain.Issue{{Message: "file does not end with a newline"}}
	case bytes.HasSuffix(raw, []byte("\n\n")):
		return []domain.Issue{{Message: "file ends with multiple blank lines"}}
	}
	return nil
}

func (p FinalNewline) Fix(doc *domain.Document) ([]byte, int) {
	issues := p.Validate(doc)
	if len(issues) == 0 {
		return doc.Raw, 0
	}
	fixed := bytes.TrimRight(doc.Raw, "\r\n")
	fixed = append(fixed, '\n')
	return fixed, len(issues)
}

// LineEndings (phase 14) flags CRLF line endings and normalizes them to LF.
type LineEndings struct{}

func (LineEndings) Number() int      { return 14 }
func (LineEndings) Name() string     { return "line-endings" }
func (LineEndings) Severity() string { return domain.SeverityInfo }
func (LineEndings) Advice() string {
	return "use LF line endings (or run fix for phase 14)"
}

func (LineEndings) Validate(doc *domain.Document) []domain.Issue {
	count := bytes.Count(doc.Raw, []byte("\r\n"))
	if count == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("%d CRLF line ending(s)", count),
	}}
}

func (p LineEndings) Fix(doc *domain.Document) ([]byte, int) {
	issues := p.Validate(doc)
	if len(issues) == 0 {
		return doc.Raw, 0
	}
	fixed := bytes.ReplaceAll(doc.Raw, []byte("\r\n"), []byte("\n"))
	return fixed, len(issues)
}
