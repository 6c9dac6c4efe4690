package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/twiny/webring"
)

var (
	ErrQueueClosed = fmt.Errorf("queue is closed")
)

type (
	defaultInMemoryQueue struct {
		mu     *sync.RWMutex
		list   []*webring.Request
		cond   *sync.Cond
		closed bool
	}
)

func NewInMemoryQueue() webring.Queue {
	queue := &defaultInMemoryQueue{
		mu:   &sync.RWMutex{},
		list: make([]*webring.Request, 0, 64),
	}
	queue.cond = sync.NewCond(queue.mu)
	return queue
}
func (q *defaultInMemoryQueue) Push(ctx context.Context, req *webring.Request) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.list = append(q.list, req)
	q.cond.Broadcast()

	return nil
}
func (q *defaultInMemoryQueue) Pop(ctx context.Context) (*webring.Request, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.list) == 0 {
		if q.closed {
			return nil, ErrQueueClosed
		}
		q.cond.Wait()
	}

	req := q.list[0]
	q.list = q.list[1:]
	return req, nil
}
func (q *defaultInMemoryQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.list)
}
func (q *defaultInMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()

	return nil
}
