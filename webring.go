package webring

type (
	// Neighbors holds the previous and next member for a position in
	// the ring. An empty string marks a missing neighbor, which only
	// happens when the member list itself is empty.
	Neighbors struct {
		Prev string
		Next string
	}

	// Locator supplies the viewer's current page location when the
	// caller does not pass one explicitly. The second return reports
	// whether a location is known.
	Locator func() (string, bool)

	// Ring is an ordered member list with optional ambient location.
	Ring struct {
		members []string
		locator Locator
	}

	Option func(r *Ring)
)

func New(members []string, opts ...Option) *Ring {
	r := &Ring{
		members: members,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func WithLocator(loc Locator) Option {
	return func(r *Ring) {
		r.locator = loc
	}
}

func (r *Ring) Len() int {
	return len(r.members)
}

func (r *Ring) Members() []string {
	members := make([]string, len(r.members))
	copy(members, r.members)
	return members
}

// Neighbors computes the previous and next member relative to current.
// Member order defines adjacency and wraps around at both ends. An
// empty current falls back to the ring's Locator when one is set; with
// no location at all, or a location that matches no member, the viewer
// is treated as outside the ring and gets the last and first members
// as neighbors.
func (r *Ring) Neighbors(current string) Neighbors {
	if len(r.members) == 0 {
		return Neighbors{}
	}

	if current == "" && r.locator != nil {
		if loc, ok := r.locator(); ok {
			current = loc
		}
	}

	pos := -1
	if current != "" {
		pos = Index(r.members, current)
	}

	prev, next := wrap(pos, len(r.members))

	return Neighbors{
		Prev: r.members[prev],
		Next: r.members[next],
	}
}

// Navigate is a shorthand for New(members).Neighbors(current).
func Navigate(members []string, current string) Neighbors {
	return New(members).Neighbors(current)
}
