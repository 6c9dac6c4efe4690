package webring

import "context"

// Queue holds pending refresh jobs for the worker pool.
type Queue interface {
	Push(ctx context.Context, req *Request) error
	Pop(ctx context.Context) (*Request, error)
	Len() int
	Close() error
}
