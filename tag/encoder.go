// Package tag encodes feature attributes into the MVT key/value tables of a layer.
//
// Keys and values are shared by every feature of a layer. Each feature stores its attributes
// as a flat list of index pairs into those tables:
//
//	tags: [keyIdx0, valIdx0, keyIdx1, valIdx1, ...]
//
// The Encoder deduplicates keys by string and values by kind and bit pattern, assigning
// indices in first-seen order.
package tag

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/internal/collision"
	"github.com/arloliu/mvtgeom/internal/hash"
)

// Encoder builds the key and value tables of one layer and the tag list of each feature.
//
// Usage:
//
//	enc := tag.NewEncoder()
//	for _, f := range features {
//	    enc.Add("name", tag.String(f.Name))
//	    enc.Add("lanes", tag.Uint(f.Lanes))
//	    f.Tags = enc.TakeTags()
//	}
//	keys, values := enc.Keys(), enc.Values()
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	keys   *collision.Tracker[string]
	values *collision.Tracker[Value]
	tags   []uint32
}

// NewEncoder creates an encoder with empty tables.
func NewEncoder() *Encoder {
	return &Encoder{
		keys:   collision.NewTracker[string](),
		values: collision.NewTracker[Value](),
	}
}

// Add appends the pair (key, v) to the current feature's tags.
//
// Returns errs.ErrUnsupportedValue if v is the zero Value.
func (e *Encoder) Add(key string, v Value) error {
	if v.kind == 0 {
		return errors.Wrapf(errs.ErrUnsupportedValue, "key %q has no value kind", key)
	}

	keyIdx, _ := e.keys.Intern(hash.ID(key), key)
	valIdx, _ := e.values.Intern(v.hash(), v)
	e.tags = append(e.tags, keyIdx, valIdx)

	return nil
}

// TakeTags returns the current feature's tags and starts a new feature.
// The returned slice is owned by the caller.
func (e *Encoder) TakeTags() []uint32 {
	tags := slices.Clone(e.tags)
	e.tags = e.tags[:0]

	return tags
}

// Keys returns the layer's keys in index order.
//
// The slice references internal state and is valid until the next Add or Reset.
func (e *Encoder) Keys() []string {
	return e.keys.Values()
}

// Values returns the layer's values in index order.
//
// The slice references internal state and is valid until the next Add or Reset.
func (e *Encoder) Values() []Value {
	return e.values.Values()
}

// HasCollision reports whether two distinct keys or values shared a hash. Collisions never
// affect the result; this is informational.
func (e *Encoder) HasCollision() bool {
	return e.keys.HasCollision() || e.values.HasCollision()
}

// Reset clears the tables and the pending tags so the encoder can be reused for another layer.
func (e *Encoder) Reset() {
	e.keys.Reset()
	e.values.Reset()
	e.tags = e.tags[:0]
}
