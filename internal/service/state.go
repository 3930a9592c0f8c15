package service

import "sync"

// Phase is where an entity is in its submit lifecycle.
type Phase string

const (
	PhaseClean      Phase = "clean"
	PhaseSubmitting Phase = "submitting"
	PhaseCommitted  Phase = "committed"
	PhaseFailed     Phase = "failed"
)

// SubmitState is the view-visible state of one entity's in-flight mutation.
type SubmitState struct {
	Phase  Phase
	Reason string
}

type entityKey struct {
	kind string
	id   int
}

// submitTracker enforces the one-in-flight-submission-per-entity rule and
// records the resulting state for views to read.
type submitTracker struct {
	mu     sync.Mutex
	states map[entityKey]SubmitState
}

func newSubmitTracker() *submitTracker {
	return &submitTracker{
		states: map[entityKey]SubmitState{},
	}
}

// begin moves an entity into submitting. It reports false when a submission
// for the same entity is already in flight; the caller must refuse the
// second intent.
func (t *submitTracker) begin(key entityKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[key].Phase == PhaseSubmitting {
		return false
	}

	t.states[key] = SubmitState{Phase: PhaseSubmitting}

	return true
}

func (t *submitTracker) commit(key entityKey) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.states[key] = SubmitState{Phase: PhaseCommitted}
}

func (t *submitTracker) fail(key entityKey, reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.states[key] = SubmitState{Phase: PhaseFailed, Reason: reason}
}

func (t *submitTracker) state(key entityKey) SubmitState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.states[key]
	if !ok {
		return SubmitState{Phase: PhaseClean}
	}

	return state
}
