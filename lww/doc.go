// SPDX-License-Identifier: MIT

// Package lww implements the Last-Write-Wins Element Set (LWW-Element-Set),
// a state-based CRDT, and the content addressing it relies on.
//
// What
//
//   - Set[T] keeps two maps from element key to the latest timestamped
//     record: adds ("added at t") and removes ("removed at t").
//   - A value is a member iff it has an add record and either no remove
//     record or a remove record strictly older than the add. An add and a
//     remove with equal timestamps resolve in favour of the remove.
//   - Merge folds another replica's full state in. Per key and per map the
//     later timestamp wins, so merge is commutative, associative and
//     idempotent and replicas converge whatever order they merge in.
//
// Content addressing
//
//	ElementKey maps any value to a Key. Values implementing Keyer pick their
//	own key; everything else is serialized canonically (litter, map keys
//	sorted, private fields included, no pointer aliasing) and hashed with
//	SHA-1. Structurally equal values therefore share a key, and values that
//	Go cannot use as map keys (slices, maps) are fine. Values must be acyclic
//	and should not contain funcs or channels.
//
// Timestamps
//
//	Add and Remove stamp with the configured clock.Clock (a clock.Hybrid by
//	default). AddAt and RemoveAt take the timestamp from the caller, for
//	systems that already run a logical clock.
//
// Errors
//
//   - ErrNotFound: Remove of a value that was never added.
//
// Merge never fails.
//
// CAUTION: a Set is not synchronized. Callers that share one instance
// between goroutines must guard it themselves.
package lww
