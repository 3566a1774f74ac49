package application

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phase"
	"github.com/skillaudit/skillaudit/internal/domain/phases"
)

// FixService wraps the fix-capable subset of phases behind the shared
// dry-run contract. Fix invocations within one process are serialized: two
// phases must never rewrite the same skill file concurrently.
type FixService struct {
	scanner domain.CorpusScanner
	parser  domain.DocumentParser
	config  domain.ConfigLoader
	logger  *log.Logger

	mu sync.Mutex
}

func NewFixService(
	scanner domain.CorpusScanner,
	parser domain.DocumentParser,
	config domain.ConfigLoader,
	logger *log.Logger,
) *FixService {
	return &FixService{
		scanner: scanner,
		parser:  parser,
		config:  config,
		logger:  logger,
	}
}

// Fix runs one fix-capable phase over the corpus (or a single skill when
// opts.Skill is set). With opts.DryRun the corpus is left byte-for-byte
// untouched while IssuesFixed still reports what would be fixed. Without
// it, writes are atomic per document (temp file then rename) and a failed
// write surfaces as a critical issue for that document only; fixes already
// applied elsewhere stand.
func (s *FixService) Fix(ctx context.Context, corpusRoot string, phaseNumber int, opts domain.FixOptions) (*domain.PhaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.config.Load(corpusRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	registry := phases.NewRegistry(cfg)
	p, err := registry.ByNumber(phaseNumber)
	if err != nil {
		return nil, err
	}
	fixer, ok := p.(phase.Fixer)
	if !ok {
		return nil, fmt.Errorf("phase %d (%s): %w", p.Number(), p.Name(), domain.ErrNotFixable)
	}

	refs, err := s.scanner.Scan(corpusRoot, cfg.ExcludePaths)
	if err != nil {
		return nil, fmt.Errorf("scanning corpus: %w", err)
	}
	if opts.Skill != "" {
		refs, err = filterRef(refs, opts.Skill)
		if err != nil {
			return nil, err
		}
	}

	var allIssues []domain.Issue
	totalFixed := 0

	for _, ref := range refs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		doc, parseErr := s.parser.Parse(ref.Path)
		if parseErr != nil {
			allIssues = append(allIssues, domain.Issue{
				Severity:       domain.SeverityCritical,
				Message:        fmt.Sprintf("failed to parse %s: %v", ref.Name, parseErr),
				Recommendation: "fix the front matter so the document parses",
				Skill:          ref.Name,
				PhaseID:        p.Number(),
			})
			continue
		}

		issues, err := phase.SafeValidate(p, doc)
		if err != nil {
			return nil, err
		}
		allIssues = append(allIssues, issues...)
		if len(issues) == 0 {
			continue
		}

		fixed, n := fixer.Fix(doc)
		if n == 0 {
			continue
		}

		if opts.DryRun {
			s.logger.Debug("dry run, skipping write", "skill", ref.Name, "would_fix", n)
			totalFixed += n
			continue
		}

		if !bytes.Equal(fixed, doc.Raw) {
			if err := writeAtomic(ref.Path, fixed); err != nil {
				allIssues = append(allIssues, domain.Issue{
					Severity: domain.SeverityCritical,
					Message:  fmt.Sprintf("writing fixed document: %v", err),
					Skill:    ref.Name,
					PhaseID:  p.Number(),
				})
				continue
			}
		}
		s.logger.Debug("fixed document", "skill", ref.Name, "issues", n)
		totalFixed += n
	}

	result := domain.NewPhaseResult(p.Number(), p.Name(), allIssues)
	result.IssuesFixed = totalFixed
	return &result, nil
}

func filterRef(refs []domain.SkillRef, name string) ([]domain.SkillRef, error) {
	for _, ref := range refs {
		if ref.Name == name {
			return []domain.SkillRef{ref}, nil
		}
	}
	return nil, &domain.SkillNotFoundError{Name: name}
}

// writeAtomic replaces path via a temp file in the same directory and a
// rename, so an interrupted fix never leaves a partially-written skill.
func writeAtomic(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".skillaudit-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
