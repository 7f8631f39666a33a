// Package counter implements the visit counter as a message-passing actor.
// One goroutine owns each counter name and processes increments off a
// channel one at a time, so read-modify-write cycles against the same name
// never interleave and no increment is lost.
package counter

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/landing/internal/server/repositories/counters"
)

// GlobalCounter is the single counter name used by the landing page.
const GlobalCounter = "global"

type request struct {
	ctx   context.Context
	reply chan response
}

type response struct {
	count int64
	err   error
}

// Actor serializes increments per counter name on top of a counters store.
type Actor struct {
	store counters.Repository

	mu      sync.Mutex
	inboxes map[string]chan request
}

func NewActor(store counters.Repository) *Actor {
	return &Actor{
		store:   store,
		inboxes: make(map[string]chan request),
	}
}

// Increment applies count = count + 1 for name and returns the new value.
// Concurrent calls for the same name are strictly serialized; each caller
// observes a distinct value.
func (a *Actor) Increment(ctx context.Context, name string) (int64, error) {
	req := request{ctx: ctx, reply: make(chan response, 1)}
	a.inbox(name) <- req
	res := <-req.reply
	return res.count, res.err
}

// inbox returns the serving channel for name, spawning its owner goroutine
// on first use. Owners live for the process lifetime, matching the fixed
// set of counter names.
func (a *Actor) inbox(name string) chan request {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, ok := a.inboxes[name]
	if !ok {
		ch = make(chan request)
		a.inboxes[name] = ch
		go a.serve(name, ch)
	}
	return ch
}

func (a *Actor) serve(name string, ch chan request) {
	for req := range ch {
		count, err := a.store.Load(req.ctx, name)
		if err != nil {
			req.reply <- response{err: err}
			continue
		}

		next := count + 1
		if err := a.store.Save(req.ctx, name, next); err != nil {
			req.reply <- response{err: err}
			continue
		}

		req.reply <- response{count: next}
	}
}
