package collision

// Tracker interns values by a caller-supplied 64-bit hash and assigns each distinct value a
// dense index in first-seen order.
//
// Hash collisions (different values, same hash) are not errors: colliding values share a
// bucket and are told apart by equality, and the collision flag is set so callers can report it.
type Tracker[T comparable] struct {
	buckets      map[uint64][]uint32 // Hash → indices into values
	values       []T                 // Ordered list of distinct values
	hasCollision bool                // Whether a collision has been detected
}

// NewTracker creates a new, empty tracker.
func NewTracker[T comparable]() *Tracker[T] {
	return &Tracker[T]{
		buckets: make(map[uint64][]uint32),
		values:  make([]T, 0),
	}
}

// Intern returns the index of v, adding it if it has not been seen before.
// The second return value reports whether v was added by this call.
func (t *Tracker[T]) Intern(hash uint64, v T) (uint32, bool) {
	bucket := t.buckets[hash]
	for _, idx := range bucket {
		if t.values[idx] == v {
			return idx, false
		}
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}

	idx := uint32(len(t.values)) //nolint:gosec
	t.values = append(t.values, v)
	t.buckets[hash] = append(bucket, idx)

	return idx, true
}

// Values returns the distinct values in the order they were first interned.
func (t *Tracker[T]) Values() []T {
	return t.values
}

// Count returns the number of distinct values.
func (t *Tracker[T]) Count() int {
	return len(t.values)
}

// HasCollision returns true if two distinct values shared a hash.
func (t *Tracker[T]) HasCollision() bool {
	return t.hasCollision
}

// Reset clears all tracked values and collision state.
// This allows reusing the tracker for a new layer.
func (t *Tracker[T]) Reset() {
	clear(t.buckets)
	t.values = t.values[:0]
	t.hasCollision = false
}
