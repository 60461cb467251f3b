// SPDX-License-Identifier: MIT

package clock

import "fmt"

// Timestamp orders add/remove events. Wall carries physical time in
// nanoseconds; Logical orders events that share a Wall value.
type Timestamp struct {
	Wall    int64  `json:"wall"`
	Logical uint32 `json:"logical,omitempty"`
}

// Compare returns -1, 0 or +1 as t is before, equal to, or after o.
func (t Timestamp) Compare(o Timestamp) int {
	switch {
	case t.Wall < o.Wall:
		return -1
	case t.Wall > o.Wall:
		return 1
	case t.Logical < o.Logical:
		return -1
	case t.Logical > o.Logical:
		return 1
	}

	return 0
}

// Before reports whether t orders strictly before o.
func (t Timestamp) Before(o Timestamp) bool { return t.Compare(o) < 0 }

// After reports whether t orders strictly after o.
func (t Timestamp) After(o Timestamp) bool { return t.Compare(o) > 0 }

// IsZero reports whether t is the zero Timestamp.
func (t Timestamp) IsZero() bool { return t.Wall == 0 && t.Logical == 0 }

// String renders t as "wall.logical".
func (t Timestamp) String() string { return fmt.Sprintf("%d.%d", t.Wall, t.Logical) }

// Max returns the later of a and b.
func Max(a, b Timestamp) Timestamp {
	if a.Before(b) {
		return b
	}

	return a
}

// Clock hands out timestamps for local events.
type Clock interface {
	Now() Timestamp
}

// Observer is implemented by clocks that can fold in timestamps received
// from other replicas so that later local events order after them.
type Observer interface {
	Observe(remote Timestamp)
}
