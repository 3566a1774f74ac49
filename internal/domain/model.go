package domain

import "sort"

// PhaseCount is the number of registered audit phases. The phase registry
// asserts agreement with this constant at construction time, so CLI help
// text and input validation can rely on it.
const PhaseCount = 21

// Issue represents a single finding produced by a phase against a skill.
type Issue struct {
	Severity       string   `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
	Context        []string `json:"context,omitempty"`
	Skill          string   `json:"skill,omitempty"`
	PhaseID        int      `json:"phase_id"`
}

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// SeverityRank orders severities for reporting: critical < warning < info.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// PhaseResult holds the outcome of running one phase.
type PhaseResult struct {
	PhaseID           int     `json:"phase_id"`
	PhaseName         string  `json:"phase_name"`
	DocumentsAffected int     `json:"documents_affected"`
	IssuesFound       int     `json:"issues_found"`
	IssuesFixed       int     `json:"issues_fixed"`
	Issues            []Issue `json:"issues,omitempty"`
}

// NewPhaseResult builds a PhaseResult from a phase's issues, deriving
// IssuesFound and DocumentsAffected (distinct skills with at least one issue).
func NewPhaseResult(phaseID int, phaseName string, issues []Issue) PhaseResult {
	affected := make(map[string]bool)
	for _, issue := range issues {
		affected[issue.Skill] = true
	}
	return PhaseResult{
		PhaseID:           phaseID,
		PhaseName:         phaseName,
		DocumentsAffected: len(affected),
		IssuesFound:       len(issues),
		Issues:            issues,
	}
}

// AuditReport aggregates the results of one orchestration run.
// Severity totals are derived from the typed Issue.Severity field.
type AuditReport struct {
	CommitHash    string        `json:"commit_hash,omitempty"`
	Phases        []PhaseResult `json:"phases"`
	TotalCritical int           `json:"total_critical"`
	TotalWarning  int           `json:"total_warning"`
	TotalInfo     int           `json:"total_info"`
}

// NewAuditReport assembles an AuditReport and computes severity totals.
func NewAuditReport(phases []PhaseResult) *AuditReport {
	report := &AuditReport{Phases: phases}
	for _, pr := range phases {
		for _, issue := range pr.Issues {
			switch issue.Severity {
			case SeverityCritical:
				report.TotalCritical++
			case SeverityWarning:
				report.TotalWarning++
			default:
				report.TotalInfo++
			}
		}
	}
	return report
}

// Passed reports whether the audit is clean enough to ship: no critical issues.
func (r *AuditReport) Passed() bool { return r.TotalCritical == 0 }

// TotalIssues returns the number of issues across all phases.
func (r *AuditReport) TotalIssues() int {
	return r.TotalCritical + r.TotalWarning + r.TotalInfo
}

// StructuredIssue is the flat, reporting-only projection of an Issue used
// for table rendering. Not persisted.
type StructuredIssue struct {
	Phase          string `json:"phase"`
	PhaseNumber    int    `json:"phase_number"`
	Severity       string `json:"severity"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Details        string `json:"details,omitempty"`
}

// Structured flattens every issue across every phase into table rows,
// filling in a phase-keyed default recommendation where an issue has none,
// sorted by severity (critical < warning < info) then phase number.
func (r *AuditReport) Structured(advice func(phaseID int) string) []StructuredIssue {
	var rows []StructuredIssue
	for _, pr := range r.Phases {
		for _, issue := range pr.Issues {
			rec := issue.Recommendation
			if rec == "" && advice != nil {
				rec = advice(issue.PhaseID)
			}
			details := issue.Skill
			if len(issue.Context) > 0 {
				if details != "" {
					details += ": "
				}
				details += issue.Context[0]
			}
			rows = append(rows, StructuredIssue{
				Phase:          pr.PhaseName,
				PhaseNumber:    pr.PhaseID,
				Severity:       issue.Severity,
				Issue:          issue.Message,
				Recommendation: rec,
				Details:        details,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := SeverityRank(rows[i].Severity), SeverityRank(rows[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return rows[i].PhaseNumber < rows[j].PhaseNumber
	})

	return rows
}

// FixOptions controls a fix invocation.
type FixOptions struct {
	DryRun bool   `json:"dry_run"`
	Skill  string `json:"skill,omitempty"`
}
