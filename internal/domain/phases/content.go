package phases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// WordCount (phase 6) bounds the body word count.
type WordCount struct {
	Config domain.AuditConfig
}

func (WordCount) Number() int      { return 6 }
func (WordCount) Name() string     { return "word-count" }
func (WordCount) Severity() string { return domain.SeverityWarning }
func (WordCount) Advice() string {
	return "keep the skill body within the configured word budget"
}

func (p WordCount) Validate(doc *domain.Document) []domain.Issue {
	words := 0
	for _, line := range doc.Body {
		words += len(strings.Fields(line))
	}

	min, max := p.Config.WordCount.Min, p.Config.WordCount.Max
	switch {
	case min > 0 && words < min:
		return []domain.Issue{{
			Message:        fmt.Sprintf("body is %d words (minimum %d)", words, min),
			Recommendation: "flesh out the instructions or fold the skill into a related one",
		}}
	case max > 0 && words > max:
		return []domain.Issue{{
			Message:        fmt.Sprintf("body is %d words (maximum %d)", words, max),
			Recommendation: "move reference material into linked files",
		}}
	}
	return nil
}

var todoRe = regexp.MustCompile(`\b(TODO|FIXME|XXX)\b`)

// TodoMarkers (phase 17) flags leftover work markers in prose. Code fences
// are exempt since examples may legitimately show them.
type TodoMarkers struct{}

func (TodoMarkers) Number() int      { return 17 }
func (TodoMarkers) Name() string     { return "todo-markers" }
func (TodoMarkers) Severity() string { return domain.SeverityInfo }
func (TodoMarkers) Advice() string {
	return "resolve or remove leftover TODO markers before publishing"
}

func (TodoMarkers) Validate(doc *domain.Document) []domain.Issue {
	mask := fenceMask(doc.Body)
	var context []string
	count := 0
	for i, line := range doc.Body {
		if mask[i] || !todoRe.MatchString(line) {
			continue
		}
		count++
		if len(context) < 3 {
			context = append(context, truncate(line, 80))
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("%d TODO/FIXME marker(s) in prose", count),
		Context: context,
	}}
}

// LineLength (phase 20) flags overlong prose lines. Fenced code is exempt.
type LineLength struct {
	Config domain.AuditConfig
}

func (LineLength) Number() int      { return 20 }
func (LineLength) Name() string     { return "line-length" }
func (LineLength) Severity() string { return domain.SeverityInfo }
func (LineLength) Advice() string {
	return "wrap prose lines at the configured width"
}

func (p LineLength) Validate(doc *domain.Document) []domain.Issue {
	limit := p.Config.MaxLineLength
	if limit == 0 {
		return nil
	}

	mask := fenceMask(doc.Body)
	var context []string
	count := 0
	for i, line := range doc.Body {
		if mask[i] || len(line) <= limit {
			continue
		}
		count++
		if len(context) < 3 {
			context = append(context, truncate(line, 80))
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.Issue{{
		Message: fmt.Sprintf("%d line(s) longer than %d characters", count, limit),
		Context: context,
	}}
}
