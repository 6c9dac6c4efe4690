package fetcher

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/twiny/webring"
)

type (
	defaultHTTPClient struct {
		client     *http.Client
		bufferPool *sync.Pool
	}
)

func NewHTTPClient() webring.Fetcher {
	var (
		fn = func() any {
			return new(bytes.Buffer)
		}
	)

	return &defaultHTTPClient{
		client: &http.Client{
			Jar:     http.DefaultClient.Jar,
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 10 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   2,
				IdleConnTimeout:       10 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		bufferPool: &sync.Pool{
			New: fn,
		},
	}
}

func (f *defaultHTTPClient) Fetch(ctx context.Context, req *webring.Request) (*webring.Response, error) {
	fctx := ctx
	if req.Param != nil && req.Param.Timeout > 0 {
		var done context.CancelFunc
		fctx, done = context.WithTimeout(ctx, req.Param.Timeout)
		defer done()
	}

	return f.fetch(fctx, req)
}

func (f *defaultHTTPClient) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

func (f *defaultHTTPClient) fetch(ctx context.Context, req *webring.Request) (*webring.Response, error) {
	var (
		userAgent   = ""
		referer     = ""
		selector    = ""
		maxBodySize = int64(1024 * 1024 * 5)
	)

	if req.Param != nil {
		userAgent = req.Param.UserAgent
		referer = req.Param.Referer
		selector = req.Param.Selector
		if req.Param.MaxBodySize > 0 {
			maxBodySize = req.Param.MaxBodySize
		}
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.Source.String(), nil)
	if err != nil {
		return nil, err
	}

	if userAgent != "" {
		hreq.Header.Set("User-Agent", userAgent)
	}
	if referer != "" {
		hreq.Header.Set("Referer", referer)
	}

	start := time.Now()

	resp, err := f.client.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf := f.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer f.bufferPool.Put(buf)

	// cap body reading
	if _, err := io.CopyN(buf, resp.Body, maxBodySize); err != nil && err != io.EOF {
		return nil, err
	}

	members, err := webring.ParseMembers(resp.Header.Get("Content-Type"), buf.Bytes(), req.Source, selector)
	if err != nil {
		return nil, err
	}

	return &webring.Response{
		Ring:        req.Ring,
		Source:      req.Source,
		Status:      resp.StatusCode,
		Members:     members,
		ElapsedTime: time.Since(start),
	}, nil
}
