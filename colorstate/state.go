package colorstate

import (
	"go.uber.org/atomic"
)

// Uncolored is the sentinel value of an unassigned vertex.
const Uncolored int32 = -1

// State is the atomic coloring state for one run. It must be created via
// New; the zero value is not usable.
type State struct {
	color    []atomic.Int32
	conflict []atomic.Bool
	ceiling  atomic.Int32
}

// New allocates a State for n vertices, all initially Uncolored, with a
// ceiling of 0.
func New(n int32) *State {
	s := &State{
		color:    make([]atomic.Int32, n),
		conflict: make([]atomic.Bool, n),
	}
	for i := range s.color {
		s.color[i].Store(Uncolored)
	}
	return s
}

// N returns the number of vertices this State was sized for.
func (s *State) N() int32 { return int32(len(s.color)) }

// Assign publishes color c for vertex v with release semantics.
// Callers are responsible for having already raised the ceiling above c
// via BumpCeilingTo, per the publish-ordering contract in the package doc.
func (s *State) Assign(v int32, c int32) {
	s.color[v].Store(c)
}

// Read loads the current color of v with acquire semantics. Returns
// Uncolored if v has not been assigned yet.
func (s *State) Read(v int32) int32 {
	return s.color[v].Load()
}

// Ceiling loads the current ceiling: one past the largest color any
// vertex currently carries.
func (s *State) Ceiling() int32 {
	return s.ceiling.Load()
}

// BumpCeilingTo atomically raises the ceiling so that it is strictly
// greater than c, i.e. ceiling >= c+1. It is a no-op if the ceiling
// already exceeds c. The ceiling never decreases across a run: this is a
// CAS-loop, not a plain store, so a stale caller can never clobber a
// concurrently-raised ceiling with a smaller value.
//
// Returns the ceiling value observed to satisfy the postcondition (which
// may be higher than c+1 if another goroutine raced ahead).
func (s *State) BumpCeilingTo(c int32) int32 {
	target := c + 1
	for {
		cur := s.ceiling.Load()
		if cur >= target {
			return cur
		}
		if s.ceiling.CompareAndSwap(cur, target) {
			return target
		}
		// lost the race; reload and retry
	}
}

// CompareAndSwapCeiling attempts exactly one CAS from old to newVal. It
// reports false, with the ceiling left untouched, if another goroutine
// has already moved it away from old — callers that need the ceiling
// raised regardless of contention should use BumpCeilingTo instead; this
// single-attempt form exists for strategies (AtomicCAS) that need to
// detect and react to a lost race rather than have it absorbed for them.
func (s *State) CompareAndSwapCeiling(old, newVal int32) bool {
	if newVal <= old {
		return s.ceiling.Load() >= newVal
	}
	return s.ceiling.CompareAndSwap(old, newVal)
}

// FetchAddCeiling atomically increments the ceiling by one and returns
// the pre-increment value — used by the guaranteed-unique-color final
// repair pass to mint a color no other vertex currently holds.
func (s *State) FetchAddCeiling() int32 {
	return s.ceiling.Add(1) - 1
}

// SetConflict sets or clears the conflict flag for v.
func (s *State) SetConflict(v int32, b bool) {
	s.conflict[v].Store(b)
}

// HasConflict reports whether v is currently flagged as a conflict loser.
func (s *State) HasConflict(v int32) bool {
	return s.conflict[v].Load()
}

// ClearAllConflicts clears every conflict flag; called at the start of
// each Conflict Resolver iteration.
func (s *State) ClearAllConflicts() {
	for i := range s.conflict {
		s.conflict[i].Store(false)
	}
}

// Snapshot returns a plain []int32 copy of the current colors, safe to
// hand to a caller after the run has quiesced.
func (s *State) Snapshot() []int32 {
	out := make([]int32, len(s.color))
	for i := range s.color {
		out[i] = s.color[i].Load()
	}
	return out
}
