package ratelimit

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry struct {
	identifier  string
	count       int
	windowStart time.Time
	elem        *list.Element
}

// MemoryLimiter is a fixed-window counter per identifier. The window starts
// at the identifier's first hit and the counter resets once it elapses.
// Tracked identifiers are capped at maxClients; when a new identifier would
// exceed the cap, the least-recently-seen one is evicted so memory stays
// bounded no matter how many distinct clients hit the endpoint.
type MemoryLimiter struct {
	mu         sync.Mutex
	entries    map[string]*entry
	order      *list.List // least recently seen at the front
	maxRequest int
	window     time.Duration
	maxClients int
	now        func() time.Time
}

func NewMemoryLimiter(maxRequest int, window time.Duration, maxClients int) *MemoryLimiter {
	return &MemoryLimiter{
		entries:    make(map[string]*entry),
		order:      list.New(),
		maxRequest: maxRequest,
		window:     window,
		maxClients: maxClients,
		now:        time.Now,
	}
}

func (l *MemoryLimiter) Check(_ context.Context, identifier string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[identifier]
	if ok && now.Sub(e.windowStart) >= l.window {
		// Window elapsed, start a fresh one
		e.count = 0
		e.windowStart = now
	}
	if !ok {
		if len(l.entries) >= l.maxClients {
			l.evictOldest()
		}
		e = &entry{identifier: identifier, windowStart: now}
		e.elem = l.order.PushBack(e)
		l.entries[identifier] = e
	} else {
		l.order.MoveToBack(e.elem)
	}

	reset := e.windowStart.Add(l.window)

	if e.count >= l.maxRequest {
		return Decision{
			Allowed:   false,
			Limit:     l.maxRequest,
			Remaining: 0,
			Reset:     reset,
		}, nil
	}

	e.count++
	return Decision{
		Allowed:   true,
		Limit:     l.maxRequest,
		Remaining: l.maxRequest - e.count,
		Reset:     reset,
	}, nil
}

func (l *MemoryLimiter) evictOldest() {
	front := l.order.Front()
	if front == nil {
		return
	}
	oldest := front.Value.(*entry)
	l.order.Remove(front)
	delete(l.entries, oldest.identifier)
}

// Tracked reports how many identifiers currently hold a window.
func (l *MemoryLimiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
