package params

// Parameter is a named, observable value of type T. Parameters are usually
// created and owned by a Collection, which names them positionally; handles
// returned by the collection alias the stored parameter and stay valid only
// while the parameter remains in the collection.
type Parameter[T Value] struct {
	name     string
	value    T
	min, max T
	bounded  bool
	changed  Event[T]
}

// NewParameter returns a parameter with the given name and initial value.
func NewParameter[T Value](name string, value T) *Parameter[T] {
	return &Parameter[T]{name: name, value: value}
}

func (p *Parameter[T]) Name() string { return p.name }

func (p *Parameter[T]) SetName(name string) { p.name = name }

// EscapedName returns the parameter's name in XML-element-safe form.
func (p *Parameter[T]) EscapedName() string { return escapeName(p.name) }

// Get returns the current value.
func (p *Parameter[T]) Get() T { return p.value }

// Set assigns v and notifies change listeners. Listeners fire only when the
// value actually changes.
func (p *Parameter[T]) Set(v T) {
	if p.value == v {
		return
	}
	p.value = v
	p.changed.Notify(v)
}

// setQuiet assigns v without notifying listeners.
func (p *Parameter[T]) setQuiet(v T) { p.value = v }

// SetMin records the parameter's minimum. Bounds are metadata for
// presentation layers; Set does not clamp.
func (p *Parameter[T]) SetMin(min T) {
	p.min = min
	p.bounded = true
}

// SetMax records the parameter's maximum. Bounds are metadata for
// presentation layers; Set does not clamp.
func (p *Parameter[T]) SetMax(max T) {
	p.max = max
	p.bounded = true
}

// Min returns the recorded minimum and whether bounds are active.
func (p *Parameter[T]) Min() (T, bool) { return p.min, p.bounded }

// Max returns the recorded maximum and whether bounds are active.
func (p *Parameter[T]) Max() (T, bool) { return p.max, p.bounded }

// OnChange subscribes fn to value changes. Release the returned listener
// when done with it.
func (p *Parameter[T]) OnChange(fn func(T)) *Listener[T] {
	return p.changed.NewListener(fn)
}

// ValueString returns the value in its canonical text form.
func (p *Parameter[T]) ValueString() string { return formatValue(p.value) }

// SetValueString parses s and assigns the result without firing the change
// event. The generic deserializer writes values through here.
func (p *Parameter[T]) SetValueString(s string) error {
	v, err := parseValue[T](s)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}
