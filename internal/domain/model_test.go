package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillaudit/skillaudit/internal/domain"
)

func TestNewPhaseResult_CountsDistinctDocuments(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityWarning, Message: "a", Skill: "skill-a", PhaseID: 2},
		{Severity: domain.SeverityWarning, Message: "b", Skill: "skill-a", PhaseID: 2},
		{Severity: domain.SeverityWarning, Message: "c", Skill: "skill-b", PhaseID: 2},
	}

	result := domain.NewPhaseResult(2, "required-fields", issues)

	assert.Equal(t, 2, result.PhaseID)
	assert.Equal(t, "required-fields", result.PhaseName)
	assert.Equal(t, 3, result.IssuesFound)
	assert.Equal(t, len(result.Issues), result.IssuesFound)
	assert.Equal(t, 2, result.DocumentsAffected)
	assert.Equal(t, 0, result.IssuesFixed)
}

func TestNewPhaseResult_Empty(t *testing.T) {
	result := domain.NewPhaseResult(7, "heading-hierarchy", nil)

	assert.Equal(t, 0, result.IssuesFound)
	assert.Equal(t, 0, result.DocumentsAffected)
}

func TestNewAuditReport_TotalsFromTypedSeverity(t *testing.T) {
	phases := []domain.PhaseResult{
		domain.NewPhaseResult(1, "frontmatter", []domain.Issue{
			// A message containing the word CRITICAL must not be
			// double-counted; totals come from the typed field only.
			{Severity: domain.SeverityWarning, Message: "mentions CRITICAL in prose", Skill: "a", PhaseID: 1},
		}),
		domain.NewPhaseResult(2, "required-fields", []domain.Issue{
			{Severity: domain.SeverityCritical, Message: "x", Skill: "a", PhaseID: 2},
			{Severity: domain.SeverityInfo, Message: "y", Skill: "b", PhaseID: 2},
		}),
	}

	report := domain.NewAuditReport(phases)

	assert.Equal(t, 1, report.TotalCritical)
	assert.Equal(t, 1, report.TotalWarning)
	assert.Equal(t, 1, report.TotalInfo)
	assert.Equal(t, 3, report.TotalIssues())
	assert.False(t, report.Passed())
}

func TestAuditReport_PassedWithoutCritical(t *testing.T) {
	report := domain.NewAuditReport([]domain.PhaseResult{
		domain.NewPhaseResult(3, "unknown-fields", []domain.Issue{
			{Severity: domain.SeverityInfo, Message: "x", Skill: "a", PhaseID: 3},
		}),
	})

	assert.True(t, report.Passed())
}

func TestStructured_SortsBySeverityThenPhase(t *testing.T) {
	report := domain.NewAuditReport([]domain.PhaseResult{
		domain.NewPhaseResult(4, "internal-links", []domain.Issue{
			{Severity: domain.SeverityWarning, Message: "broken link", Skill: "a", PhaseID: 4},
			{Severity: domain.SeverityInfo, Message: "note", Skill: "a", PhaseID: 4},
		}),
		domain.NewPhaseResult(16, "code-fences", []domain.Issue{
			{Severity: domain.SeverityCritical, Message: "unclosed fence", Skill: "b", PhaseID: 16},
		}),
		domain.NewPhaseResult(2, "required-fields", []domain.Issue{
			{Severity: domain.SeverityWarning, Message: "missing field", Skill: "b", PhaseID: 2},
		}),
	})

	rows := report.Structured(nil)

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		prevRank := domain.SeverityRank(prev.Severity)
		curRank := domain.SeverityRank(cur.Severity)
		if prevRank == curRank {
			assert.LessOrEqual(t, prev.PhaseNumber, cur.PhaseNumber)
		} else {
			assert.Less(t, prevRank, curRank)
		}
	}

	assert.Equal(t, "unclosed fence", rows[0].Issue)
	assert.Equal(t, "missing field", rows[1].Issue)
	assert.Equal(t, "broken link", rows[2].Issue)
	assert.Equal(t, "note", rows[3].Issue)
}

func TestStructured_FallbackRecommendation(t *testing.T) {
	report := domain.NewAuditReport([]domain.PhaseResult{
		domain.NewPhaseResult(6, "word-count", []domain.Issue{
			{Severity: domain.SeverityWarning, Message: "too long", Skill: "a", PhaseID: 6},
			{Severity: domain.SeverityWarning, Message: "too short", Recommendation: "write more", Skill: "b", PhaseID: 6},
		}),
	})

	rows := report.Structured(func(phaseID int) string {
		assert.Equal(t, 6, phaseID)
		return "trim the body"
	})

	assert.Equal(t, "trim the body", rows[0].Recommendation)
	assert.Equal(t, "write more", rows[1].Recommendation)
}

func TestSeverityRank_Order(t *testing.T) {
	assert.Less(t, domain.SeverityRank(domain.SeverityCritical), domain.SeverityRank(domain.SeverityWarning))
	assert.Less(t, domain.SeverityRank(domain.SeverityWarning), domain.SeverityRank(domain.SeverityInfo))
}
