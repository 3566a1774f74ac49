package phase

import (
	"fmt"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// Registry is the ordered collection of phases. Registration order is the
// only sequencing guarantee; phases are otherwise independent.
type Registry struct {
	phases []Phase
}

// NewRegistry builds a registry from phases numbered contiguously 1..n with
// n == domain.PhaseCount. Both are programmer invariants, so violations
// panic at startup rather than surfacing as runtime errors.
func NewRegistry(phases ...Phase) *Registry {
	if len(phases) != domain.PhaseCount {
		panic(fmt.Sprintf("phase registry: %d phases registered, PhaseCount is %d", len(phases), domain.PhaseCount))
	}
	for i, p := range phases {
		if p.Number() != i+1 {
			panic(fmt.Sprintf("phase registry: position %d holds phase number %d", i+1, p.Number()))
		}
	}
	return &Registry{phases: phases}
}

// All returns every phase in registration order.
func (r *Registry) All() []Phase { return r.phases }

// Len returns the number of registered phases.
func (r *Registry) Len() int { return len(r.phases) }

// ByNumber looks up a phase, returning InvalidPhaseError when n is outside
// [1, Len()].
func (r *Registry) ByNumber(n int) (Phase, error) {
	if n < 1 || n > len(r.phases) {
		return nil, &domain.InvalidPhaseError{Number: n}
	}
	return r.phases[n-1], nil
}

// Advice returns the default recommendation for a phase number, or "" for
// unknown numbers. Used as the fallback when flattening issues for tables.
func (r *Registry) Advice(n int) string {
	if n < 1 || n > len(r.phases) {
		return ""
	}
	return r.phases[n-1].Advice()
}
