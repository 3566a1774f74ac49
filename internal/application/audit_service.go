package application

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phase"
	"github.com/skillaudit/skillaudit/internal/domain/phases"
)

// validateParallelism bounds concurrent per-document validation within one
// phase run. Output order is canonical regardless.
const validateParallelism = 8

// AuditService is the orchestrator: it drives the three run modes over the
// phase registry and assembles AuditReports.
type AuditService struct {
	scanner domain.CorpusScanner
	parser  domain.DocumentParser
	config  domain.ConfigLoader
	git     domain.GitInfo
	logger  *log.Logger
}

func NewAuditService(
	scanner domain.CorpusScanner,
	parser domain.DocumentParser,
	config domain.ConfigLoader,
	git domain.GitInfo,
	logger *log.Logger,
) *AuditService {
	return &AuditService{
		scanner: scanner,
		parser:  parser,
		config:  config,
		git:     git,
		logger:  logger,
	}
}

// loadCorpus loads config, discovers skills, and parses each exactly once.
// A document that fails to parse is kept with its error; it surfaces as a
// critical issue on the first phase rather than aborting the run.
func (s *AuditService) loadCorpus(corpusRoot string) ([]phase.CorpusDoc, domain.AuditConfig, error) {
	cfg, err := s.config.Load(corpusRoot)
	if err != nil {
		return nil, domain.AuditConfig{}, fmt.Errorf("loading config: %w", err)
	}

	refs, err := s.scanner.Scan(corpusRoot, cfg.ExcludePaths)
	if err != nil {
		return nil, domain.AuditConfig{}, fmt.Errorf("scanning corpus: %w", err)
	}

	docs := make([]phase.CorpusDoc, 0, len(refs))
	for _, ref := range refs {
		doc, err := s.parser.Parse(ref.Path)
		if err != nil {
			s.logger.Debug("document failed to parse", "skill", ref.Name, "error", err)
		}
		docs = append(docs, phase.CorpusDoc{Ref: ref, Doc: doc, Err: err})
	}

	s.logger.Debug("corpus loaded", "skills", len(docs))
	return docs, cfg, nil
}

// RunFull audits every skill in the corpus against every phase in
// registration order.
func (s *AuditService) RunFull(ctx context.Context, corpusRoot string) (*domain.AuditReport, error) {
	docs, cfg, err := s.loadCorpus(corpusRoot)
	if err != nil {
		return nil, err
	}

	registry := phases.NewRegistry(cfg)
	results := make([]domain.PhaseResult, 0, registry.Len())
	for i, p := range registry.All() {
		s.logger.Debug("running phase", "number", p.Number(), "name", p.Name())
		result, err := phase.Run(ctx, p, docs, phase.RunOptions{
			ReportParseFailures: i == 0,
			Parallelism:         validateParallelism,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return s.assemble(corpusRoot, results), nil
}

// RunFullForDocument parses one skill and runs every phase against it.
func (s *AuditService) RunFullForDocument(ctx context.Context, corpusRoot, name string) (*domain.AuditReport, error) {
	target, cfg, err := s.loadDocument(corpusRoot, name)
	if err != nil {
		return nil, err
	}

	registry := phases.NewRegistry(cfg)
	results := make([]domain.PhaseResult, 0, registry.Len())
	for i, p := range registry.All() {
		result, err := phase.Run(ctx, p, []phase.CorpusDoc{*target}, phase.RunOptions{
			ReportParseFailures: i == 0,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return s.assemble(corpusRoot, results), nil
}

// RunPhaseForDocument runs exactly one phase, looked up by number, against
// one skill. Fails with InvalidPhaseError when the number is out of range.
func (s *AuditService) RunPhaseForDocument(ctx context.Context, corpusRoot, name string, phaseNumber int) (*domain.AuditReport, error) {
	target, cfg, err := s.loadDocument(corpusRoot, name)
	if err != nil {
		return nil, err
	}

	registry := phases.NewRegistry(cfg)
	p, err := registry.ByNumber(phaseNumber)
	if err != nil {
		return nil, err
	}

	result, err := phase.Run(ctx, p, []phase.CorpusDoc{*target}, phase.RunOptions{
		ReportParseFailures: true,
	})
	if err != nil {
		return nil, err
	}

	return s.assemble(corpusRoot, []domain.PhaseResult{result}), nil
}

// loadDocument finds and parses a single named skill. The parse happens
// once; the document is shared read-only across phases for the run.
func (s *AuditService) loadDocument(corpusRoot, name string) (*phase.CorpusDoc, domain.AuditConfig, error) {
	cfg, err := s.config.Load(corpusRoot)
	if err != nil {
		return nil, domain.AuditConfig{}, fmt.Errorf("loading config: %w", err)
	}

	refs, err := s.scanner.Scan(corpusRoot, cfg.ExcludePaths)
	if err != nil {
		return nil, domain.AuditConfig{}, fmt.Errorf("scanning corpus: %w", err)
	}

	for _, ref := range refs {
		if ref.Name == name {
			doc, parseErr := s.parser.Parse(ref.Path)
			return &phase.CorpusDoc{Ref: ref, Doc: doc, Err: parseErr}, cfg, nil
		}
	}
	return nil, domain.AuditConfig{}, &domain.SkillNotFoundError{Name: name}
}

// assemble builds the report and stamps the corpus commit hash when the
// corpus lives in a git repository.
func (s *AuditService) assemble(corpusRoot string, results []domain.PhaseResult) *domain.AuditReport {
	report := domain.NewAuditReport(results)
	if s.git != nil && s.git.IsGitRepo(corpusRoot) {
		if hash, err := s.git.CommitHash(corpusRoot); err == nil {
			report.CommitHash = hash
		}
	}
	return report
}
