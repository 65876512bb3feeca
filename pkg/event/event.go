// Package event provides a small synchronous, typed event dispatcher.
package event

import "sync"

// Handler is a function that receives an event payload.
type Handler[T any] func(payload T)

type listener[T any] struct {
	id int
	fn Handler[T]
}

// Bus delivers payloads of one type to its listeners, in registration order.
type Bus[T any] struct {
	mu        sync.RWMutex
	nextID    int
	listeners []listener[T]
}

// NewBus returns an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Listen registers a handler and returns a func that removes it again.
// Calling the returned func more than once is harmless.
func (b *Bus[T]) Listen(h Handler[T]) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener[T]{id: id, fn: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Fire dispatches payload synchronously to every listener registered at the
// moment of the call. Handlers may Listen, cancel or Fire without deadlocking.
func (b *Bus[T]) Fire(payload T) {
	b.mu.RLock()
	hs := make([]Handler[T], len(b.listeners))
	for i, l := range b.listeners {
		hs[i] = l.fn
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Len reports how many listeners are registered.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Flush removes all listeners (useful in tests).
func (b *Bus[T]) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = nil
}
