// SPDX-License-Identifier: MIT

// Package clock provides the timestamps that order add and remove events in
// the lww and lwwgraph packages, and the clocks that produce them.
//
// What
//
//   - Timestamp: a (Wall, Logical) pair with a total order. Wall is a
//     nanosecond reading; Logical breaks ties between events that share it.
//   - Clock: anything that can hand out a Timestamp for "now".
//   - Observer: a Clock that can absorb timestamps seen from other replicas.
//
// Implementations
//
//   - Wall:   plain time.Now(); Logical is always zero. Two events inside one
//     nanosecond compare equal, and skewed replicas misorder events.
//   - Hybrid: hybrid logical clock. Monotonic per process, and after
//     Observe(remote) every local stamp orders after remote. Safe for
//     concurrent use, so one Hybrid can feed several sets.
//   - Manual: returns whatever the caller set. Meant for tests and replay,
//     where equal timestamps are needed on purpose.
//
// Usage
//
//	hc := clock.NewHybrid()
//	s := lww.NewSet[string](lww.WithClock(hc))
//
// Cross-replica comparison is only meaningful if every replica stamps with a
// compatible clock. The package does not implement vector clocks.
package clock
