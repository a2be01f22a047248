package params

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
)

// Collection manages an indefinite number of parameters of a single type
// while preserving their serialization and notification abilities. It is
// useful when you want to work with parameters but don't know ahead of time
// how many you will have; in essence it is a slice of parameters with a
// mirrored Group kept in lockstep for serialization.
//
// Every parameter is named prefix + index. Names are positional, not
// identity-based: removing a parameter renames everything after it.
//
// Structural mutations (add, remove, clear, rebuild) notify
// CollectionChanged; individual value changes notify ItemChanged.
type Collection[T Value] struct {
	// CollectionChanged fires when parameters are added to or removed from
	// the collection. Safe to subscribe before Setup.
	CollectionChanged Event[*Collection[T]]

	// ItemChanged fires when the value of a parameter in the collection
	// changes, carrying the parameter that changed.
	ItemChanged Event[*Parameter[T]]

	prefix    string
	group     *Group
	params    []*Parameter[T]
	router    itemRouter[T]
	isSetup   bool
	hasLimits bool
	min, max  T
	logger    *slog.Logger
}

// Option configures a Collection during Setup.
type Option[T Value] func(*Collection[T])

// WithLimits activates bounds: every parameter the collection creates gets
// min and max recorded on it.
func WithLimits[T Value](min, max T) Option[T] {
	return func(c *Collection[T]) {
		c.min, c.max = min, max
		c.hasLimits = true
	}
}

// WithLogger sets the logger used for recoverable anomalies. Defaults to
// slog.Default().
func WithLogger[T Value](l *slog.Logger) Option[T] {
	return func(c *Collection[T]) { c.logger = l }
}

// Setup readies the collection for use and must be called exactly once,
// before any other method. prefix is prepended to every entry's name (a
// prefix of "My Param " yields entries serialized as "My_Param_0",
// "My_Param_1", ...), groupName names the mirrored group, and parent is the
// group the mirrored group is placed in. A nil parent leaves the mirrored
// group unattached, in which case the caller serializes it directly.
//
// Setup panics if called twice.
func (c *Collection[T]) Setup(prefix, groupName string, parent *Group, opts ...Option[T]) {
	if c.isSetup {
		panic("params: Setup called twice")
	}
	c.prefix = prefix
	c.group = NewGroup(groupName)
	if parent != nil {
		parent.Add(c.group)
	}
	c.router.event = &c.ItemChanged
	c.logger = slog.Default()
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.isSetup = true
}

func (c *Collection[T]) mustBeSetup() {
	if !c.isSetup {
		panic("params: collection used before Setup")
	}
}

// SetLimits activates bounds for parameters created from now on.
func (c *Collection[T]) SetLimits(min, max T) {
	c.min, c.max = min, max
	c.hasLimits = true
}

// AddItem creates a parameter holding value, appends it to the collection
// and to the mirrored group, and wires its change notification into
// ItemChanged. If notify is true, CollectionChanged fires. The returned
// handle aliases the stored parameter.
func (c *Collection[T]) AddItem(value T, notify bool) *Parameter[T] {
	c.mustBeSetup()
	p := NewParameter(c.prefix+strconv.Itoa(len(c.params)), value)
	if c.hasLimits {
		p.SetMin(c.min)
		p.SetMax(c.max)
	}
	c.router.attach(p)
	c.params = append(c.params, p)
	c.group.Add(p)
	c.assertMirrored()
	if notify {
		c.Notify()
	}
	return p
}

// At returns the parameter at index i. It panics if i is out of range.
func (c *Collection[T]) At(i int) *Parameter[T] {
	c.mustBeSetup()
	if i < 0 || i >= len(c.params) {
		panic(fmt.Sprintf("params: index %d out of range [0,%d)", i, len(c.params)))
	}
	return c.params[i]
}

// RemoveAt removes the parameter at index i. An out-of-range index is
// logged and reported as false, not treated as fatal.
func (c *Collection[T]) RemoveAt(i int, notify bool) bool {
	c.mustBeSetup()
	if i < 0 || i >= len(c.params) {
		c.logger.Info("params: RemoveAt index out of bounds", "index", i, "size", len(c.params))
		return false
	}
	c.removeIndex(i, notify)
	return true
}

// RemoveItem removes the parameter p, matched by handle identity. Returns
// false when p is not in the collection.
func (c *Collection[T]) RemoveItem(p *Parameter[T], notify bool) bool {
	c.mustBeSetup()
	if p == nil {
		return false
	}
	for i, q := range c.params {
		if q == p {
			c.removeIndex(i, notify)
			return true
		}
	}
	c.logger.Info("params: RemoveItem parameter not in collection", "name", p.Name())
	return false
}

// removeIndex splices the parameter out, releases its change subscription
// and renames everything after it so names stay positional.
func (c *Collection[T]) removeIndex(i int, notify bool) {
	c.router.detachAt(i)
	c.params = append(c.params[:i], c.params[i+1:]...)
	c.group.RemoveAt(i)
	for k := i; k < len(c.params); k++ {
		c.params[k].SetName(c.prefix + strconv.Itoa(k))
	}
	c.assertMirrored()
	if notify {
		c.Notify()
	}
}

// SetCollection clears the collection and rebuilds it positionally from
// values. Parameter identities from before the call are not preserved, and
// any listeners added directly to prior parameters are gone with them;
// listeners on CollectionChanged and ItemChanged are unaffected.
func (c *Collection[T]) SetCollection(values []T, notify bool) {
	c.mustBeSetup()
	c.Clear(false)
	for _, v := range values {
		c.AddItem(v, false)
	}
	if notify {
		c.Notify()
	}
}

// SetCollectionParams rebuilds the collection from the current values of
// ps. Values are copied; the identities of ps are not adopted.
func (c *Collection[T]) SetCollectionParams(ps []*Parameter[T], notify bool) {
	c.mustBeSetup()
	values := make([]T, len(ps))
	for i, p := range ps {
		values[i] = p.Get()
	}
	c.SetCollection(values, notify)
}

// SetValues updates every parameter's value in place. values must hold
// exactly one value per parameter; otherwise ErrLengthMismatch is returned
// and nothing changes. Count, names and group structure are untouched.
//
// Only CollectionChanged fires; per-item change events do not. Callers who
// need per-item delivery should set through At(i).Set(v) instead.
func (c *Collection[T]) SetValues(values []T, notify bool) error {
	c.mustBeSetup()
	if len(values) != len(c.params) {
		return fmt.Errorf("%w: got %d values, collection holds %d", ErrLengthMismatch, len(values), len(c.params))
	}
	for i, v := range values {
		c.params[i].setQuiet(v)
	}
	if notify {
		c.Notify()
	}
	return nil
}

// Clear removes every parameter from the collection and every field from
// the mirrored group, releasing all change subscriptions. Clearing an empty
// collection is a no-op apart from the optional notification.
func (c *Collection[T]) Clear(notify bool) {
	c.mustBeSetup()
	for i := c.group.Len() - 1; i >= 0; i-- {
		c.group.RemoveAt(i)
	}
	c.params = nil
	c.router.releaseAll()
	if notify {
		c.Notify()
	}
}

// Size returns the number of parameters in the collection.
func (c *Collection[T]) Size() int { return len(c.params) }

// Back returns the last parameter, or nil when the collection is empty.
func (c *Collection[T]) Back() *Parameter[T] {
	if len(c.params) == 0 {
		return nil
	}
	return c.params[len(c.params)-1]
}

// Parameters returns a snapshot copy of the parameter handles in index
// order. Mutating the returned slice does not affect the collection.
func (c *Collection[T]) Parameters() []*Parameter[T] {
	out := make([]*Parameter[T], len(c.params))
	copy(out, c.params)
	return out
}

// All ranges over the live parameters in index order. Mutating the
// collection during traversal is undefined behavior.
func (c *Collection[T]) All() iter.Seq2[int, *Parameter[T]] {
	return func(yield func(int, *Parameter[T]) bool) {
		for i, p := range c.params {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Group returns the mirrored group. The group is populated and managed by
// the collection: do not add or remove its fields directly, use AddItem and
// RemoveItem, or the mirror invariant breaks.
func (c *Collection[T]) Group() *Group {
	c.mustBeSetup()
	return c.group
}

// Notify broadcasts CollectionChanged. You shouldn't have to call this
// yourself in most situations.
func (c *Collection[T]) Notify() {
	c.CollectionChanged.Notify(c)
}

func (c *Collection[T]) assertMirrored() {
	if len(c.params) != c.group.Len() {
		panic("params: parameter list and mirrored group diverged")
	}
}
