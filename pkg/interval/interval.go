package interval

import (
	"cmp"
	"fmt"
	"strings"
)

// Bound constrains the domain an interval ranges over: any copyable type
// with a total order and value equality. No arithmetic is required, so
// ordinal domains (version counters, lexicographically ordered timestamp
// strings) qualify alongside numeric ones. Floating-point NaN breaks the
// total-order contract; [Difference] rejects it with
// [ErrIncomparableBounds].
type Bound interface {
	cmp.Ordered
}

// Interval is an immutable half-open range [Lower, Upper) labeled with a
// set of tags. Lower <= Upper is assumed, not enforced; a zero-length
// interval is legal and never contributes output.
type Interval[B Bound] struct {
	Lower B
	Upper B
	Tags  Tags
}

// New constructs an interval. The tag set is copied, so the caller may
// keep mutating its own.
func New[B Bound](lower, upper B, tags Tags) Interval[B] {
	return Interval[B]{Lower: lower, Upper: upper, Tags: tags.Clone()}
}

// Empty reports whether the interval covers no points.
func (iv Interval[B]) Empty() bool {
	return iv.Upper <= iv.Lower
}

// Equal reports structural equality: both bounds and the exact tag set.
func (iv Interval[B]) Equal(other Interval[B]) bool {
	return iv.Lower == other.Lower && iv.Upper == other.Upper && iv.Tags.Equal(other.Tags)
}

func (iv Interval[B]) String() string {
	return fmt.Sprintf("[%v,%v){%s}", iv.Lower, iv.Upper, strings.Join(iv.Tags.Sorted(), ","))
}
