package domain

import (
	"errors"
	"fmt"
)

// ErrNotFixable is returned when a fix is requested for a check-only phase.
var ErrNotFixable = errors.New("phase does not support fixing")

// InvalidPhaseError is returned when a phase number is outside [1, PhaseCount].
type InvalidPhaseError struct {
	Number int
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid phase number %d: must be between 1 and %d", e.Number, PhaseCount)
}

// SkillNotFoundError is returned when a named skill is not in the corpus.
type SkillNotFoundError struct {
	Name string
}

func (e *SkillNotFoundError) Error() string {
	return fmt.Sprintf("skill %q not found in corpus", e.Name)
}

// PhaseFailedError wraps an unexpected failure inside a phase. It is a tool
// failure, never downgraded to an Issue, so a partially crashed phase cannot
// silently lose findings.
type PhaseFailedError struct {
	PhaseID int
	Name    string
	Err     error
}

func (e *PhaseFailedError) Error() string {
	return fmt.Sprintf("phase %d (%s) failed: %v", e.PhaseID, e.Name, e.Err)
}

func (e *PhaseFailedError) Unwrap() error { return e.Err }
