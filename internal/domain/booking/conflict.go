package booking

import "math/rand/v2"

// ConflictPolicy models contention against other concurrent bookers.
// Booking creation and availability checks consult it; a true result
// surfaces as a retryable "room no longer available" error.
type ConflictPolicy interface {
	Conflict() bool
}

// RandomConflictPolicy fails a fixed fraction of attempts.
type RandomConflictPolicy struct {
	probability float64
	rng         *rand.Rand
}

func NewRandomConflictPolicy(probability float64, rng *rand.Rand) *RandomConflictPolicy {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return &RandomConflictPolicy{probability: probability, rng: rng}
}

func (p *RandomConflictPolicy) Conflict() bool {
	if p.probability == 0 {
		return false
	}
	if p.rng != nil {
		return p.rng.Float64() < p.probability
	}
	return rand.Float64() < p.probability
}

// NeverConflict and AlwaysConflict make both branches deterministic in tests.
type NeverConflict struct{}

func (NeverConflict) Conflict() bool { return false }

type AlwaysConflict struct{}

func (AlwaysConflict) Conflict() bool { return true }
