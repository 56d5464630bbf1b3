package interval

import (
	"cmp"
	"slices"
)

type eventKind uint8

const (
	kindSpecified eventKind = iota
	kindHistory
)

type edgeDirection uint8

const (
	edgeLower edgeDirection = iota
	edgeUpper
)

// boundaryEvent is one edge of a source interval. History events carry a
// flattened copy of their interval's tags; the sweep treats those copies as
// a multiset, so the flattening order does not matter. Events exist only
// for the duration of one Difference call.
type boundaryEvent[B Bound] struct {
	kind      eventKind
	direction edgeDirection
	bound     B
	tags      []string
}

func intervalEvents[B Bound](iv Interval[B], kind eventKind) (lower, upper boundaryEvent[B]) {
	var tags []string
	if kind == kindHistory {
		tags = iv.Tags.list()
	}
	lower = boundaryEvent[B]{kind: kind, direction: edgeLower, bound: iv.Lower, tags: tags}
	upper = boundaryEvent[B]{kind: kind, direction: edgeUpper, bound: iv.Upper, tags: tags}
	return lower, upper
}

// buildEvents flattens the specified interval and every history interval
// into boundary events sorted ascending by bound. Relative order within an
// equal-bound run is immaterial: the sweep groups such runs explicitly.
func buildEvents[B Bound](specified Interval[B], history []Interval[B]) []boundaryEvent[B] {
	events := make([]boundaryEvent[B], 0, 2+2*len(history))
	lower, upper := intervalEvents(specified, kindSpecified)
	events = append(events, lower, upper)
	for _, iv := range history {
		lower, upper := intervalEvents(iv, kindHistory)
		events = append(events, lower, upper)
	}
	slices.SortStableFunc(events, func(a, b boundaryEvent[B]) int {
		return cmp.Compare(a.bound, b.bound)
	})
	return events
}
