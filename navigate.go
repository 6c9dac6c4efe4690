package webring

// Index locates current within members by normalized-origin equality
// and returns its zero-based position, or -1 when no member matches.
// When either side of a comparison fails strict URL parsing, that
// comparison degrades to exact string equality. The first matching
// member wins; duplicates after it are never considered.
func Index(members []string, current string) int {
	cur := parseOrigin(current)

	for i, member := range members {
		entry := parseOrigin(member)

		if entry.ok && cur.ok {
			if entry.value == cur.value {
				return i
			}
			continue
		}

		if member == current {
			return i
		}
	}

	return -1
}

// wrap computes the circular previous and next positions around pos.
// n must be > 0. pos == -1 means the viewer is outside the ring, e.g.
// on a hub page: previous is then the last member and next the first,
// so both directions still enter the ring. A single-member ring is its
// own neighbor in both directions.
func wrap(pos, n int) (prev, next int) {
	if pos < 0 {
		return n - 1, 0
	}

	prev = pos - 1
	if prev < 0 {
		prev = n - 1
	}

	next = pos + 1
	if next == n {
		next = 0
	}

	return prev, next
}
