package webring

import "testing"

func TestNavigate(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		current string
		prev    string
		next    string
	}{
		{"empty ring", nil, "https://a.example", "", ""},
		{"empty ring no current", []string{}, "", "", ""},
		{"single member", []string{"https://a.example"}, "https://a.example", "https://a.example", "https://a.example"},
		{"single member from outside", []string{"https://a.example"}, "https://z.example", "https://a.example", "https://a.example"},
		{"middle", ring3, "https://b.example", "https://a.example", "https://c.example"},
		{"www alias of middle", ring3, "https://www.b.example", "https://a.example", "https://c.example"},
		{"first wraps back to last", ring3, "https://a.example", "https://c.example", "https://b.example"},
		{"last wraps forward to first", ring3, "https://c.example", "https://b.example", "https://a.example"},
		{"hub page gets last and first", ring3, "https://hub.example", "https://c.example", "https://a.example"},
		{"no current at all", ring3, "", "https://c.example", "https://a.example"},
		{"malformed current acts as outside", ring3, "not a url", "https://c.example", "https://a.example"},
	}

	for _, tt := range tests {
		got := Navigate(tt.members, tt.current)
		if got.Prev != tt.prev || got.Next != tt.next {
			t.Errorf("%s: Navigate = {%q %q}; want {%q %q}", tt.name, got.Prev, got.Next, tt.prev, tt.next)
		}
	}
}

// Both neighbors must come from the member list whenever it is
// non-empty, whatever the current value looks like.
func TestNavigateMembership(t *testing.T) {
	currents := []string{
		"", "https://a.example", "https://www.c.example", "https://z.example", "not a url", "ftp://a.example",
	}

	lists := [][]string{
		{"https://a.example"},
		ring3,
		{"https://a.example", "not a url", "https://b.example"},
	}

	for _, members := range lists {
		contains := func(link string) bool {
			for _, m := range members {
				if m == link {
					return true
				}
			}
			return false
		}

		for _, current := range currents {
			got := Navigate(members, current)
			if !contains(got.Prev) || !contains(got.Next) {
				t.Errorf("Navigate(%v, %q) = {%q %q}; neighbors must be members", members, current, got.Prev, got.Next)
			}
		}
	}
}

func TestRingLocator(t *testing.T) {
	located := func() (string, bool) { return "https://b.example", true }
	unknown := func() (string, bool) { return "", false }

	// locator supplies the missing current
	got := New(ring3, WithLocator(located)).Neighbors("")
	if got.Prev != "https://a.example" || got.Next != "https://c.example" {
		t.Errorf("locator lookup = {%q %q}; want {%q %q}", got.Prev, got.Next, "https://a.example", "https://c.example")
	}

	// explicit current wins over the locator
	got = New(ring3, WithLocator(located)).Neighbors("https://a.example")
	if got.Prev != "https://c.example" || got.Next != "https://b.example" {
		t.Errorf("explicit current = {%q %q}; want {%q %q}", got.Prev, got.Next, "https://c.example", "https://b.example")
	}

	// locator without a location falls through to the hub case
	got = New(ring3, WithLocator(unknown)).Neighbors("")
	if got.Prev != "https://c.example" || got.Next != "https://a.example" {
		t.Errorf("unknown location = {%q %q}; want {%q %q}", got.Prev, got.Next, "https://c.example", "https://a.example")
	}
}

func TestRingMembersCopy(t *testing.T) {
	r := New(ring3)

	members := r.Members()
	members[0] = "https://mutated.example"

	if r.Members()[0] != "https://a.example" {
		t.Error("Members must return a copy")
	}

	if r.Len() != 3 {
		t.Errorf("Len = %d; want 3", r.Len())
	}
}
