// SPDX-License-Identifier: MIT

package lww

import (
	"fmt"
	"sort"

	"github.com/go-kit/kit/log/level"
	"github.com/sanity-io/litter"

	"github.com/katalvlaran/lwwgraph/clock"
)

// Set is a Last-Write-Wins Element Set over values of type T.
//
// adds and removes hold at most one record per key: a repeated add or remove
// of the same value overwrites the earlier record. A key only enters removes
// after it has entered adds.
type Set[T any] struct {
	adds    map[Key]Element[T]
	removes map[Key]Element[T]
	opts    Options
}

// NewSet returns an empty Set.
// Complexity: O(1)
func NewSet[T any](opts ...Option) *Set[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Set[T]{
		adds:    make(map[Key]Element[T]),
		removes: make(map[Key]Element[T]),
		opts:    o,
	}
}

// NewSetFromState returns a Set seeded with copies of state's maps.
// Nil maps are treated as empty.
// Complexity: O(n)
func NewSetFromState[T any](state State[T], opts ...Option) *Set[T] {
	s := NewSet[T](opts...)
	s.adds = copyElements(state.Adds)
	s.removes = copyElements(state.Removes)

	return s
}

// Add records v as added now.
func (s *Set[T]) Add(v T) {
	s.AddAt(v, s.opts.Clock.Now())
}

// AddAt records v as added at ts, replacing any earlier add record for v.
// An add that is later than the latest remove makes v a member again.
// Complexity: O(size of v) for hashing.
func (s *Set[T]) AddAt(v T, ts clock.Timestamp) {
	s.adds[ElementKey(v)] = Element[T]{Value: v, Timestamp: ts}
	s.opts.Metrics.Adds.Add(1)
}

// Remove records v as removed now.
// Returns ErrNotFound if v was never added.
func (s *Set[T]) Remove(v T) error {
	k := ElementKey(v)
	if _, ok := s.adds[k]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	s.removeKey(k, v, s.opts.Clock.Now())

	return nil
}

// RemoveAt records v as removed at ts.
// Returns ErrNotFound if v was never added. A value that was added but is
// not currently a member can still be removed again.
func (s *Set[T]) RemoveAt(v T, ts clock.Timestamp) error {
	k := ElementKey(v)
	if _, ok := s.adds[k]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	s.removeKey(k, v, ts)

	return nil
}

func (s *Set[T]) removeKey(k Key, v T, ts clock.Timestamp) {
	s.removes[k] = Element[T]{Value: v, Timestamp: ts}
	s.opts.Metrics.Removes.Add(1)
}

// Contains reports whether v is currently a member.
// Ties between add and remove timestamps resolve to "not a member".
func (s *Set[T]) Contains(v T) bool {
	return s.ContainsKey(ElementKey(v))
}

// ContainsKey is Contains for an already computed key.
func (s *Set[T]) ContainsKey(k Key) bool {
	a, ok := s.adds[k]
	if !ok {
		return false
	}
	r, ok := s.removes[k]

	return !ok || r.Timestamp.Before(a.Timestamp)
}

// Members returns every current member, ordered by element key.
// The order carries no meaning beyond being reproducible.
// Complexity: O(n log n)
func (s *Set[T]) Members() []T {
	keys := s.MemberKeys()
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = s.adds[k].Value
	}

	return out
}

// MemberKeys returns the keys of all current members, sorted.
func (s *Set[T]) MemberKeys() []Key {
	keys := make([]Key, 0, len(s.adds))
	for k := range s.adds {
		if s.ContainsKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Len returns the number of current members.
func (s *Set[T]) Len() int {
	n := 0
	for k := range s.adds {
		if s.ContainsKey(k) {
			n++
		}
	}

	return n
}

// Lookup returns the value recorded in the add map under k.
// The value need not be a current member.
func (s *Set[T]) Lookup(k Key) (T, bool) {
	e, ok := s.adds[k]

	return e.Value, ok
}

// AddedAt returns the timestamp of v's add record, if any.
func (s *Set[T]) AddedAt(v T) (clock.Timestamp, bool) {
	e, ok := s.adds[ElementKey(v)]

	return e.Timestamp, ok
}

// RemovedAt returns the timestamp of v's remove record, if any.
func (s *Set[T]) RemovedAt(v T) (clock.Timestamp, bool) {
	e, ok := s.removes[ElementKey(v)]

	return e.Timestamp, ok
}

// Merge folds other's adds and removes into s.
//
// For each map, the result holds the union of keys; a key present on both
// sides keeps the record with the later timestamp, and equal timestamps keep
// the record whose value has the greater Canonical form. Merging with nil is
// a no-op. Merging with s itself leaves s unchanged.
// Complexity: O(n + m)
func (s *Set[T]) Merge(other *Set[T]) {
	if other == nil {
		return
	}

	s.adds = mergeElements(s.adds, other.adds)
	s.removes = mergeElements(s.removes, other.removes)

	if obs, ok := s.opts.Clock.(clock.Observer); ok {
		obs.Observe(latest(other.adds, other.removes))
	}
	s.opts.Metrics.Merges.Add(1)

	level.Debug(s.opts.Logger).Log(
		"msg", "merged lww set",
		"adds", len(s.adds),
		"removes", len(s.removes),
		"members", s.Len(),
	)
}

// State returns a copy of both maps.
func (s *Set[T]) State() State[T] {
	return State[T]{
		Adds:    copyElements(s.adds),
		Removes: copyElements(s.removes),
	}
}

// Clone returns an independent Set with the same records and options.
// Values themselves are copied shallowly.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		adds:    copyElements(s.adds),
		removes: copyElements(s.removes),
		opts:    s.opts,
	}
}

// String dumps both maps for debugging.
func (s *Set[T]) String() string {
	return fmt.Sprintf("adds: %s\nremoves: %s", litter.Sdump(s.adds), litter.Sdump(s.removes))
}

// mergeElements returns the per-key last-writer-wins union of a and b.
func mergeElements[T any](a, b map[Key]Element[T]) map[Key]Element[T] {
	merged := make(map[Key]Element[T], max(len(a), len(b)))
	for k, e := range a {
		merged[k] = e
	}
	for k, e := range b {
		if cur, ok := merged[k]; !ok || wins(e, cur) {
			merged[k] = e
		}
	}

	return merged
}

// wins reports whether e should replace cur.
func wins[T any](e, cur Element[T]) bool {
	if c := e.Timestamp.Compare(cur.Timestamp); c != 0 {
		return c > 0
	}

	return Canonical(e.Value) > Canonical(cur.Value)
}

// latest returns the greatest timestamp across the given maps.
func latest[T any](maps ...map[Key]Element[T]) clock.Timestamp {
	var ts clock.Timestamp
	for _, m := range maps {
		for _, e := range m {
			ts = clock.Max(ts, e.Timestamp)
		}
	}

	return ts
}

func copyElements[T any](m map[Key]Element[T]) map[Key]Element[T] {
	out := make(map[Key]Element[T], len(m))
	for k, e := range m {
		out[k] = e
	}

	return out
}
