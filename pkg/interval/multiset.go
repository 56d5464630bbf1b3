package interval

// multisetDiff returns the occurrences of a that are not cancelled by an
// equal-count occurrence in b, preserving a's order and relative duplicate
// counts. This is bag subtraction, not set subtraction: the same tag may be
// contributed by several history intervals at once, and each contribution
// must be retired by exactly one matching end-of-coverage occurrence.
func multisetDiff(a, b []string) []string {
	if len(a) == 0 {
		return nil
	}
	counts := make(map[string]int, len(b))
	for _, s := range b {
		counts[s]++
	}
	kept := make([]string, 0, len(a))
	for _, s := range a {
		// Absent entries start at zero and go negative, meaning b had no
		// occurrence left to consume for this occurrence of s.
		counts[s]--
		if counts[s] < 0 {
			kept = append(kept, s)
		}
	}
	return kept
}
