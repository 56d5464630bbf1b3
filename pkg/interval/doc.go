// Package interval computes which portions of a tagged half-open range are
// not yet covered, tag by tag, by a history of previously covered ranges.
//
// The single entry point is [Difference]: given one "specified" interval and
// any number of "history" intervals, it returns the minimal ordered sequence
// of non-overlapping sub-intervals of the specified range on which at least
// one specified tag is uncovered, each annotated with exactly the tags still
// missing there.
//
// Bounds are generic over any totally ordered domain (timestamps encoded as
// integers or RFC 3339 strings, version counters, offsets); no arithmetic is
// performed on them. Tags are opaque strings compared by value.
//
// Everything in this package is pure domain logic: no I/O, no persistence,
// no shared state between calls. A Difference call is a deterministic
// function of its inputs, so independent calls are safe to run concurrently
// without locking.
package interval
