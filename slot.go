package solver

import "sync"

// resultSlot is the single authoritative location holding the published
// answer for one solve run.
//
// The slot transitions empty → occupied at most once. The check-for-empty and
// the write happen inside one critical section, so two workers can never both
// observe "empty" and both publish. The mutex, not the advisory cancellation
// flag, is the sole correctness mechanism deciding the winner.
type resultSlot struct {
	mu       sync.Mutex
	value    uint64
	occupied bool

	// writes counts successful publications. It can only ever reach 1 in a
	// correct run; tests assert on it under concurrent stress.
	writes int
}

func newResultSlot() *resultSlot {
	return &resultSlot{}
}

// tryPublish attempts to claim the slot for the given candidate.
//
// Returns:
//   - bool: true if this call won the race and the candidate was published,
//     false if the slot was already occupied
func (s *resultSlot) tryPublish(candidate uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupied {
		return false
	}

	s.value = candidate
	s.occupied = true
	s.writes++

	return true
}

// get returns the published candidate, if any.
//
// Returns:
//   - uint64: The published candidate (0 if the slot is empty)
//   - bool: true if the slot is occupied
func (s *resultSlot) get() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value, s.occupied
}

// writeCount returns how many times the slot was successfully written.
func (s *resultSlot) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}
