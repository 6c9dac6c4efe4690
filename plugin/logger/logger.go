package logger

import (
	"time"

	"github.com/twiny/flog/v2"
	"github.com/twiny/webring"
)

type (
	defaultLogger struct {
		l *flog.Logger
	}
)

func NewFileLogger(prefix string) (*defaultLogger, error) {
	logger, err := flog.NewLogger(prefix, 10, 10)
	if err != nil {
		return nil, err
	}

	return &defaultLogger{
		l: logger,
	}, nil
}

func (l *defaultLogger) Write(log *webring.Log) error {
	f := []flog.Field{
		flog.NewField("ring", log.Ring),
		flog.NewField("source", log.Source),
		flog.NewField("status", log.Status),
		flog.NewField("members", log.Members),
		flog.NewField("timestamp", log.Timestamp.Format(time.RFC3339)),
		flog.NewField("response_time", log.ResponseTime.String()),
	}

	if log.Err != nil {
		f = append(f, flog.NewField("error", log.Err.Error()))
		l.l.Error(log.Err.Error(), f...)
		return nil
	}

	l.l.Info("refresh", f...)
	return nil
}
func (l *defaultLogger) Close() error {
	l.l.Close()
	return nil
}
