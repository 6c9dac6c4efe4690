package webring

import "time"

type (
	// Logger records the outcome of member-list refreshes.
	Logger interface {
		Write(log *Log) error
		Close() error
	}

	Log struct {
		Ring         string
		Source       string
		Status       int
		Members      int
		Timestamp    time.Time
		ResponseTime time.Duration
		Err          error
	}
)

// NewLog builds a refresh log record from a fetch outcome. resp may
// be nil when the fetch failed before producing a response.
func NewLog(resp *Response, err error) *Log {
	log := &Log{
		Timestamp: time.Now(),
		Err:       err,
	}

	if resp != nil {
		log.Ring = resp.Ring
		log.Source = resp.Source.String()
		log.Status = resp.Status
		log.Members = len(resp.Members)
		log.ResponseTime = resp.ElapsedTime
	}

	return log
}
