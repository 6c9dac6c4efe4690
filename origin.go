package webring

import (
	"net/url"
	"regexp"
	"strings"
)

var wwwPrefix = regexp.MustCompile(`(?i)^(https?://)www\.`)

// parsedOrigin is the outcome of a strict origin parse. When ok is
// true, value is the canonical scheme://host[:port] form. When ok is
// false, value carries the degraded text fallback instead.
type parsedOrigin struct {
	ok    bool
	value string
}

// parseOrigin reduces raw to its origin. A strict parse requires an
// absolute URL with a non-empty host; the host is lower-cased and a
// single leading "www." label is dropped. Unparseable input degrades
// to a text substitution that strips "www." right after the scheme
// delimiter, leaving the rest of the string untouched.
func parseOrigin(raw string) parsedOrigin {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return parsedOrigin{
			ok:    false,
			value: wwwPrefix.ReplaceAllString(raw, "$1"),
		}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	origin := u.Scheme + "://" + host
	if port := u.Port(); port != "" {
		origin += ":" + port
	}

	return parsedOrigin{
		ok:    true,
		value: origin,
	}
}

// NormalizeOrigin returns the canonical comparable form of a URL or
// origin string. A hostname and its "www."-prefixed alias normalize
// to the same value, so both spellings count as one ring member. It
// never fails; input that cannot be parsed is echoed back with only
// the "www." substitution applied.
func NormalizeOrigin(raw string) string {
	return parseOrigin(raw).value
}
