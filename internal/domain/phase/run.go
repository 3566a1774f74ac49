package phase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// CorpusDoc pairs a discovered skill with its parse outcome. A document
// that failed to parse carries Err and a nil Doc.
type CorpusDoc struct {
	Ref domain.SkillRef
	Doc *domain.Document
	Err error
}

// RunOptions controls one corpus-wide phase run.
type RunOptions struct {
	// ReportParseFailures makes this run emit the critical parse-failure
	// issue for unparsable documents. The orchestrator sets it for exactly
	// one phase per report so each broken document is counted once.
	ReportParseFailures bool
	// Parallelism bounds concurrent per-document validation. Zero means
	// sequential.
	Parallelism int
}

// Run validates every document in the corpus against one phase and returns
// its PhaseResult. Validation may run concurrently, but issues are always
// emitted in corpus (document-name) order so repeated runs are
// byte-identical. A panicking validator aborts the phase and is surfaced as
// a PhaseFailedError, never as a silent partial result.
func Run(ctx context.Context, p Phase, docs []CorpusDoc, opts RunOptions) (domain.PhaseResult, error) {
	perDoc := make([][]domain.Issue, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 1 {
		g.SetLimit(opts.Parallelism)
	} else {
		g.SetLimit(1)
	}

	for i, cd := range docs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if cd.Err != nil {
				if opts.ReportParseFailures {
					perDoc[i] = []domain.Issue{{
						Severity:       domain.SeverityCritical,
						Message:        fmt.Sprintf("failed to parse %s: %v", cd.Ref.Name, cd.Err),
						Recommendation: "fix the front matter so the document parses",
						Skill:          cd.Ref.Name,
						PhaseID:        p.Number(),
					}}
				}
				return nil
			}

			issues, err := SafeValidate(p, cd.Doc)
			if err != nil {
				return err
			}
			perDoc[i] = issues
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.PhaseResult{}, err
	}

	var all []domain.Issue
	for _, issues := range perDoc {
		all = append(all, issues...)
	}
	return domain.NewPhaseResult(p.Number(), p.Name(), all), nil
}

// SafeValidate runs a phase's Validate with panic isolation and stamps the
// phase number and skill name onto each issue the rule body left blank.
func SafeValidate(p Phase, doc *domain.Document) (issues []domain.Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			err = &domain.PhaseFailedError{
				PhaseID: p.Number(),
				Name:    p.Name(),
				Err:     fmt.Errorf("validate panicked on %s: %v", doc.Name, r),
			}
		}
	}()

	issues = p.Validate(doc)
	for i := range issues {
		if issues[i].PhaseID == 0 {
			issues[i].PhaseID = p.Number()
		}
		if issues[i].Skill == "" {
			issues[i].Skill = doc.Name
		}
		if issues[i].Severity == "" {
			issues[i].Severity = p.Severity()
		}
	}
	return issues, nil
}
