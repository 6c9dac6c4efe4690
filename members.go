package webring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoMembers = fmt.Errorf("no members found")

// ValidURL parses raw as an absolute http(s) URL. Fragments are
// dropped since they never identify a distinct member site.
func ValidURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid scheme: %q", u.Scheme)
	}

	if u.Hostname() == "" {
		return nil, fmt.Errorf("missing host: %q", raw)
	}

	u.Fragment = ""

	return u, nil
}

// FindMembers extracts the ordered member list from an HTML ring page.
// When selector is non-empty only anchors under it are considered,
// which lets a hub page carry navigation links outside the ring
// listing. Relative hrefs resolve against base. Fragment-only links,
// non-http schemes and exact repeats are skipped; document order is
// kept since it defines ring adjacency.
func FindMembers(body []byte, base *url.URL, selector string) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	scope := doc.Selection
	if selector != "" {
		scope = doc.Find(selector)
	}

	var (
		members []string
		seen    = make(map[string]bool)
	)

	scope.Find("a[href]").Each(func(index int, item *goquery.Selection) {
		href, found := item.Attr("href")
		if !found || strings.HasPrefix(href, "#") {
			return
		}

		if base != nil {
			abs, err := base.Parse(href)
			if err != nil {
				return
			}
			href = abs.String()
		}

		u, err := ValidURL(href)
		if err != nil {
			return
		}

		link := u.String()
		if seen[link] {
			return
		}
		seen[link] = true

		members = append(members, link)
	})

	return members
}

// memberDoc is the JSON shape of a hosted ring source.
type memberDoc struct {
	Members []string `json:"members"`
}

// ParseMembers decodes a fetched ring source body into an ordered
// member list. JSON sources may be a bare array of URLs or an object
// with a "members" field; anything else is treated as an HTML page.
func ParseMembers(contentType string, body []byte, base *url.URL, selector string) ([]string, error) {
	if strings.Contains(contentType, "json") || looksJSON(body) {
		return parseMemberJSON(body)
	}

	members := FindMembers(body, base, selector)
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	return members, nil
}

func parseMemberJSON(body []byte) ([]string, error) {
	var raw []string
	if err := json.Unmarshal(body, &raw); err != nil {
		var doc memberDoc
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode members: %w", err)
		}
		raw = doc.Members
	}

	var (
		members []string
		seen    = make(map[string]bool)
	)

	for _, link := range raw {
		u, err := ValidURL(link)
		if err != nil {
			continue
		}

		member := u.String()
		if seen[member] {
			continue
		}
		seen[member] = true

		members = append(members, member)
	}

	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	return members, nil
}

func looksJSON(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{')
}
