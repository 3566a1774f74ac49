package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

// Renderer turns audit reports into styled terminal output. It is a
// strategy object so the core stays presentation-agnostic; tests construct
// one directly instead of touching process-wide state.
type Renderer struct {
	header      lipgloss.Style
	title       lipgloss.Style
	dim         lipgloss.Style
	faint       lipgloss.Style
	pass        lipgloss.Style
	fail        lipgloss.Style
	criticalTag lipgloss.Style
	warnTag     lipgloss.Style
	infoTag     lipgloss.Style
	phaseName   lipgloss.Style
}

func New() *Renderer {
	return &Renderer{
		header:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		title:       lipgloss.NewStyle().Bold(true).Foreground(fg),
		dim:         lipgloss.NewStyle().Foreground(dim),
		faint:       lipgloss.NewStyle().Foreground(faint),
		pass:        lipgloss.NewStyle().Foreground(success).Bold(true),
		fail:        lipgloss.NewStyle().Foreground(danger).Bold(true),
		criticalTag: lipgloss.NewStyle().Foreground(danger).Bold(true),
		warnTag:     lipgloss.NewStyle().Foreground(warning).Bold(true),
		infoTag:     lipgloss.NewStyle().Foreground(info),
		phaseName:   lipgloss.NewStyle().Bold(true).Foreground(fg),
	}
}

// Summary renders the collapsed report: severity counts plus the pass/fail
// line. The audit passes iff there are no critical issues.
func (r *Renderer) Summary(report *domain.AuditReport) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + r.header.Render("skillaudit") + "\n\n")
	fmt.Fprintf(&b, "  %s  %s  %s\n",
		r.criticalTag.Render(fmt.Sprintf("%d critical", report.TotalCritical)),
		r.warnTag.Render(fmt.Sprintf("%d warnings", report.TotalWarning)),
		r.infoTag.Render(fmt.Sprintf("%d info", report.TotalInfo)),
	)
	b.WriteString("\n")

	if report.Passed() {
		b.WriteString("  " + r.pass.Render("PASS") + r.dim.Render("  no critical issues") + "\n")
	} else {
		b.WriteString("  " + r.fail.Render("FAIL") +
			r.dim.Render(fmt.Sprintf("  %d critical issue(s)", report.TotalCritical)) + "\n")
	}

	return b.String()
}

// Verbose renders per-phase lines followed by the collapsed summary.
func (r *Renderer) Verbose(report *domain.AuditReport) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + r.header.Render("skillaudit") + "\n")
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString("  " + r.faint.Render("corpus @ "+hash) + "\n")
	}
	b.WriteString("\n")

	for _, pr := range report.Phases {
		name := padRight(fmt.Sprintf("%2d %s", pr.PhaseID, pr.PhaseName), 28)
		line := fmt.Sprintf("  %s %s",
			r.phaseName.Render(name),
			r.dim.Render(fmt.Sprintf("%3d issue(s) in %d document(s)", pr.IssuesFound, pr.DocumentsAffected)),
		)
		if pr.IssuesFixed > 0 {
			line += "  " + r.pass.Render(fmt.Sprintf("%d fixed", pr.IssuesFixed))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(r.Summary(report))
	return b.String()
}

// Table renders the fully flattened, severity-then-phase sorted issue table
// with column-aligned cells.
func (r *Renderer) Table(rows []domain.StructuredIssue) string {
	if len(rows) == 0 {
		return "\n  " + r.pass.Render("No issues found.") + "\n"
	}

	headers := []string{"SEV", "PHASE", "ISSUE", "RECOMMENDATION", "DETAILS"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			strings.ToUpper(row.Severity),
			fmt.Sprintf("%d %s", row.PhaseNumber, row.Phase),
			row.Issue,
			row.Recommendation,
			row.Details,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString("\n  ")
	for i, h := range headers {
		b.WriteString(r.title.Render(padRight(h, widths[i])) + "  ")
	}
	b.WriteString("\n  " + r.faint.Render(strings.Repeat("─", totalWidth(widths))) + "\n")

	for _, row := range cells {
		b.WriteString("  ")
		b.WriteString(r.severityStyle(row[0]).Render(padRight(row[0], widths[0])) + "  ")
		b.WriteString(r.dim.Render(padRight(row[1], widths[1])) + "  ")
		b.WriteString(padRight(row[2], widths[2]) + "  ")
		b.WriteString(r.dim.Render(padRight(row[3], widths[3])) + "  ")
		b.WriteString(r.faint.Render(row[4]))
		b.WriteString("\n")
	}

	return b.String()
}

// FixResult renders the outcome of one fix invocation.
func (r *Renderer) FixResult(result *domain.PhaseResult, dryRun bool) string {
	var b strings.Builder

	b.WriteString("\n")
	mode := ""
	if dryRun {
		mode = r.dim.Render("  (dry run)")
	}
	fmt.Fprintf(&b, "  %s%s\n\n",
		r.header.Render(fmt.Sprintf("fix: phase %d %s", result.PhaseID, result.PhaseName)), mode)

	fmt.Fprintf(&b, "  %s\n", r.dim.Render(fmt.Sprintf(
		"%d issue(s) in %d document(s)", result.IssuesFound, result.DocumentsAffected)))

	verb := "fixed"
	if dryRun {
		verb = "would fix"
	}
	fmt.Fprintf(&b, "  %s\n", r.pass.Render(fmt.Sprintf("%s %d issue(s)", verb, result.IssuesFixed)))

	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "    %s %s %s\n",
			r.severityTag(issue.Severity),
			r.dim.Render(issue.Skill),
			issue.Message,
		)
	}

	return b.String()
}

func (r *Renderer) severityTag(severity string) string {
	switch severity {
	case domain.SeverityCritical:
		return r.criticalTag.Render("crit ")
	case domain.SeverityWarning:
		return r.warnTag.Render("warn ")
	default:
		return r.infoTag.Render("info ")
	}
}

func (r *Renderer) severityStyle(upper string) lipgloss.Style {
	switch upper {
	case "CRITICAL":
		return r.criticalTag
	case "WARNING":
		return r.warnTag
	default:
		return r.infoTag
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total
}
