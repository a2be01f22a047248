package params

import "github.com/google/uuid"

// Event is a synchronous fan-out of notifications of type A. The zero value
// is ready to use, so callers may subscribe to a collection's events before
// Setup has run.
type Event[A any] struct {
	listeners []*Listener[A]
}

// Listener is a releasable subscription to an Event.
type Listener[A any] struct {
	id    uuid.UUID
	fn    func(A)
	owner *Event[A]
}

// NewListener subscribes fn and returns its subscription handle. Listeners
// are notified in subscription order.
func (e *Event[A]) NewListener(fn func(A)) *Listener[A] {
	l := &Listener[A]{id: uuid.New(), fn: fn, owner: e}
	e.listeners = append(e.listeners, l)
	return l
}

// Notify delivers arg to every listener, synchronously, on the caller's
// goroutine. A listener must not mutate the collection that owns the event
// from inside its callback.
func (e *Event[A]) Notify(arg A) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[A]) remove(id uuid.UUID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Release unsubscribes the listener. Releasing an already-released listener
// is a no-op.
func (l *Listener[A]) Release() {
	if l.owner == nil {
		return
	}
	l.owner.remove(l.id)
	l.owner = nil
}
