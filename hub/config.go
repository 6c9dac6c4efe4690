package hub

import (
	"runtime"
	"time"

	"github.com/twiny/poxa"
)

const (
	defaultUserAgent   = "webring/0.1.0 (+https://github.com/twiny/webring)"
	defaultRefresh     = 15 * time.Minute
	defaultTimeout     = 10 * time.Second
	defaultMaxBodySize = int64(1024 * 1024 * 5) // 5MB
)

type (
	config struct {
		parallel    int
		refresh     time.Duration
		timeout     time.Duration
		maxBodySize int64
		userAgents  poxa.Spinner[string]
	}
)

func newConfig(refresh time.Duration, userAgents []string) *config {
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	var conf = &config{
		parallel:    runtime.NumCPU(),
		refresh:     refresh,
		timeout:     defaultTimeout,
		maxBodySize: defaultMaxBodySize,
		userAgents:  poxa.NewSpinner(defaultUserAgent),
	}

	if len(userAgents) > 0 {
		uaList := poxa.NewSpinner(userAgents...)
		if uaList != nil {
			conf.userAgents = uaList
		}
	}

	return conf
}
