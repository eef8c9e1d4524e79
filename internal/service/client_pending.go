package service

import (
	"context"
	"sync"
)

// pendingSet tracks which note ids have an operation in flight. Each entry
// holds a channel closed when the operation completes, so waiters can queue
// behind it.
type pendingSet struct {
	mu  sync.Mutex
	ops map[int64]chan struct{}
}

func newPendingSet() *pendingSet {
	return &pendingSet{ops: make(map[int64]chan struct{})}
}

// tryAcquire marks id as busy. ok is false when id is already busy.
func (p *pendingSet) tryAcquire(id int64) (release func(), ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.ops[id]; busy {
		return nil, false
	}
	return p.hold(id), true
}

// acquire waits until id is free, then marks it busy.
func (p *pendingSet) acquire(ctx context.Context, id int64) (release func(), err error) {
	for {
		p.mu.Lock()
		done, busy := p.ops[id]
		if !busy {
			release = p.hold(id)
			p.mu.Unlock()
			return release, nil
		}
		p.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (p *pendingSet) has(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.ops[id]
	return busy
}

// hold must be called with p.mu held.
func (p *pendingSet) hold(id int64) func() {
	done := make(chan struct{})
	p.ops[id] = done

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.ops, id)
			p.mu.Unlock()
			close(done)
		})
	}
}
