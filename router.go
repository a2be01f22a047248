package params

// itemRouter keeps exactly one change subscription per live parameter and
// republishes each firing as a collection-scoped event carrying the
// parameter that changed. The subscription slice is kept parallel to the
// collection's parameter slice.
type itemRouter[T Value] struct {
	event *Event[*Parameter[T]]
	subs  []*Listener[T]
}

func (r *itemRouter[T]) attach(p *Parameter[T]) {
	l := p.OnChange(func(T) {
		r.event.Notify(p)
	})
	r.subs = append(r.subs, l)
}

func (r *itemRouter[T]) detachAt(i int) {
	r.subs[i].Release()
	r.subs = append(r.subs[:i], r.subs[i+1:]...)
}

func (r *itemRouter[T]) releaseAll() {
	for _, l := range r.subs {
		l.Release()
	}
	r.subs = nil
}
