// Package phase defines the contract every audit rule implements and the
// shared machinery for running one rule across a corpus.
package phase

import (
	"github.com/skillaudit/skillaudit/internal/domain"
)

// Phase is one independently-authored validation rule. Validate must be
// pure over the document (no I/O beyond what the document carries, with the
// sole exception of network-probing phases, which must bound their timeouts)
// and deterministic for the same input.
type Phase interface {
	Number() int
	Name() string
	// Severity is the default severity of this phase's findings.
	Severity() string
	// Advice is the phase-keyed default recommendation used when an
	// individual issue carries none.
	Advice() string
	Validate(doc *domain.Document) []domain.Issue
}

// Fixer is implemented by phases that can rewrite a document to resolve
// their own findings. Fix returns the corrected file content and the number
// of issues it resolves; it never touches storage itself.
type Fixer interface {
	Phase
	Fix(doc *domain.Document) ([]byte, int)
}
