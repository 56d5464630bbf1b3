package interval

import (
	"fmt"
	"math"
)

// Difference computes the sub-intervals of specified that are not covered,
// tag by tag, by the history intervals. The result is ordered strictly
// ascending by Lower, non-overlapping, confined to
// [specified.Lower, specified.Upper), and each element carries the
// non-empty subset of specified's tags still uncovered on it. Adjacent
// sub-intervals whose visible coverage does not change at their shared
// bound are merged.
//
// history may be empty and need not be sorted. Lower <= Upper is assumed,
// not enforced; malformed intervals still produce well-defined output. The
// only error condition is a bound value outside the total order
// ([ErrIncomparableBounds]).
func Difference[B Bound](specified Interval[B], history []Interval[B]) ([]Interval[B], error) {
	if err := checkBounds(specified, history); err != nil {
		return nil, err
	}
	events := buildEvents(specified, history)

	var result []Interval[B]
	inSpecifiedRange := false
	var currentTags []string
	currentBound := specified.Lower

	for i := 0; i < len(events); {
		groupBound := events[i].bound
		specifiedLowerFound := false
		specifiedRangeOver := false
		var lowerTags, upperTags []string

		// Consume the maximal run of events sharing this bound.
		j := i
		for ; j < len(events) && events[j].bound == groupBound; j++ {
			ev := events[j]
			switch ev.kind {
			case kindHistory:
				if ev.direction == edgeLower {
					lowerTags = append(lowerTags, ev.tags...)
				} else {
					upperTags = append(upperTags, ev.tags...)
				}
			case kindSpecified:
				if ev.direction == edgeLower {
					specifiedLowerFound = true
				} else {
					specifiedRangeOver = true
				}
			}
		}

		// Retire coverage ending here (respecting multiplicity), then
		// activate coverage starting here.
		nextTags := append(multisetDiff(currentTags, upperTags), lowerTags...)

		// The segment continues when the set view of the active coverage is
		// unchanged, even if the underlying multiset changed (one interval
		// ended and another with the same tag started at this instant).
		continuous := inSpecifiedRange && setOf(nextTags).Equal(setOf(currentTags))

		if inSpecifiedRange && (!continuous || specifiedRangeOver) {
			uncovered := specified.Tags.Diff(setOf(currentTags))
			if len(uncovered) > 0 {
				result = append(result, Interval[B]{Lower: currentBound, Upper: groupBound, Tags: uncovered})
			}
		}

		if specifiedRangeOver {
			// The specified interval's right edge ends all obligations.
			break
		}
		if specifiedLowerFound {
			inSpecifiedRange = true
		}
		if !continuous {
			currentBound = groupBound
		}

		currentTags = nextTags
		i = j
	}

	return result, nil
}

func checkBounds[B Bound](specified Interval[B], history []Interval[B]) error {
	if !selfOrdered(specified.Lower) || !selfOrdered(specified.Upper) {
		return fmt.Errorf("%w: specified interval %v", ErrIncomparableBounds, specified)
	}
	for i, iv := range history {
		if !selfOrdered(iv.Lower) || !selfOrdered(iv.Upper) {
			return fmt.Errorf("%w: history interval %d %v", ErrIncomparableBounds, i, iv)
		}
	}
	return nil
}

// selfOrdered reports whether v participates in the total order. Under
// cmp.Ordered the only values that do not are IEEE NaNs.
func selfOrdered[B Bound](v B) bool {
	switch f := any(v).(type) {
	case float32:
		return !math.IsNaN(float64(f))
	case float64:
		return !math.IsNaN(f)
	}
	return true
}
