package webring

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
)

var ringPage = []byte(`<!DOCTYPE html>
<html>
<body>
	<nav><a href="/about">about</a></nav>
	<ul class="ring">
		<li><a href="https://a.example">A</a></li>
		<li><a href="https://b.example/">B</a></li>
		<li><a href="#top">top</a></li>
		<li><a href="mailto:host@ring.example">mail</a></li>
		<li><a href="https://a.example">A again</a></li>
		<li><a href="/local">local member</a></li>
	</ul>
</body>
</html>`)

func TestFindMembers(t *testing.T) {
	base, err := url.Parse("https://ring.example/")
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"https://a.example",
		"https://b.example/",
		"https://ring.example/local",
	}

	got := FindMembers(ringPage, base, "ul.ring")
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FindMembers = %v; want %v", got, expected)
	}

	// without a selector the nav link is picked up too
	got = FindMembers(ringPage, base, "")
	if len(got) != len(expected)+1 || got[0] != "https://ring.example/about" {
		t.Errorf("FindMembers without selector = %v", got)
	}
}

func TestParseMembers(t *testing.T) {
	base, _ := url.Parse("https://ring.example/")

	tests := []struct {
		name        string
		contentType string
		body        []byte
		expected    []string
	}{
		{
			"json array",
			"application/json",
			[]byte(`["https://a.example", "ftp://b.example", "https://c.example"]`),
			[]string{"https://a.example", "https://c.example"},
		},
		{
			"json object",
			"application/json; charset=utf-8",
			[]byte(`{"name": "indie ring", "members": ["https://a.example", "https://b.example"]}`),
			[]string{"https://a.example", "https://b.example"},
		},
		{
			"sniffed json",
			"text/plain",
			[]byte(`["https://a.example"]`),
			[]string{"https://a.example"},
		},
		{
			"html page",
			"text/html",
			ringPage,
			[]string{"https://a.example", "https://b.example/", "https://ring.example/local"},
		},
	}

	for _, tt := range tests {
		got, err := ParseMembers(tt.contentType, tt.body, base, "ul.ring")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: ParseMembers = %v; want %v", tt.name, got, tt.expected)
		}
	}
}

func TestParseMembersEmpty(t *testing.T) {
	if _, err := ParseMembers("application/json", []byte(`[]`), nil, ""); !errors.Is(err, ErrNoMembers) {
		t.Errorf("empty json array: err = %v; want ErrNoMembers", err)
	}

	if _, err := ParseMembers("text/html", []byte(`<html><body>no links</body></html>`), nil, ""); !errors.Is(err, ErrNoMembers) {
		t.Errorf("linkless page: err = %v; want ErrNoMembers", err)
	}
}

func TestValidURL(t *testing.T) {
	valid := []string{
		"https://a.example",
		"http://a.example/path?q=1",
		" https://a.example ",
	}

	invalid := []string{
		"ftp://a.example",
		"mailto:host@ring.example",
		"/relative",
		"not a url",
		"",
	}

	for _, link := range valid {
		if _, err := ValidURL(link); err != nil {
			t.Errorf("ValidURL(%q) returned unexpected error: %v", link, err)
		}
	}

	for _, link := range invalid {
		if _, err := ValidURL(link); err == nil {
			t.Errorf("ValidURL(%q) expected to return an error, but got none", link)
		}
	}
}
