package webring

import (
	"context"
	"net/url"
	"time"
)

type (
	// Fetcher retrieves the member list of a ring from its source.
	Fetcher interface {
		Fetch(ctx context.Context, req *Request) (*Response, error)
		Close() error
	}

	// Request describes one member-list fetch.
	Request struct {
		Ring   string
		Source *url.URL
		Param  *Param
	}

	Param struct {
		UserAgent   string
		Referer     string
		Selector    string
		MaxBodySize int64
		Timeout     time.Duration
	}

	Response struct {
		Ring        string
		Source      *url.URL
		Status      int
		Members     []string
		ElapsedTime time.Duration
	}

	// RateLimit caps member-list fetches per source host. Rate uses
	// the "10/1s" form. Hostname "*" sets the default.
	RateLimit struct {
		Hostname string
		Rate     string
	}
)
