// Package selection keeps a group of list widgets mutually exclusive: at most
// one of them holds a selected item once a selection change has settled.
package selection

import "slices"

// Listener receives a selection change. A nil next value means the selection
// was cleared.
type Listener[T any] func(prev, next *T)

// Widget is a list that reports and clears its own single selection.
// Implementations must be comparable (pointer types) since the coordinator
// keys registrations by widget identity.
type Widget[T any] interface {
	Selected() (T, bool)
	ClearSelection()
	OnSelectionChanged(fn Listener[T]) (unsubscribe func())
}

// Coordinator clears every other registered widget when one of them gains a
// selection. It is meant to be driven from a single goroutine (the UI loop)
// and holds no lock.
type Coordinator[T any] struct {
	order []Widget[T]
	subs  map[Widget[T]]func()
}

func NewCoordinator[T any]() *Coordinator[T] {
	return &Coordinator[T]{subs: map[Widget[T]]func(){}}
}

// Register adds w and subscribes to its selection changes. Registering the
// same widget twice is a no-op.
func (c *Coordinator[T]) Register(w Widget[T]) {
	if w == nil {
		panic("selection: Register called with nil widget")
	}
	if c.subs == nil {
		c.subs = map[Widget[T]]func(){}
	}
	if _, ok := c.subs[w]; ok {
		return
	}
	c.order = append(c.order, w)
	c.subs[w] = w.OnSelectionChanged(func(_, next *T) {
		// a cleared selection never cascades
		if next == nil {
			return
		}
		c.clearOthers(w)
	})
}

// Unregister removes w and drops its subscription. The widget keeps whatever
// selection it currently has. Unknown widgets are ignored.
func (c *Coordinator[T]) Unregister(w Widget[T]) {
	if w == nil {
		panic("selection: Unregister called with nil widget")
	}
	unsubscribe, ok := c.subs[w]
	if !ok {
		return
	}
	delete(c.subs, w)
	if i := slices.Index(c.order, w); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	if unsubscribe != nil {
		unsubscribe()
	}
}

// UnregisterAll drops every registration, leaving selections untouched.
func (c *Coordinator[T]) UnregisterAll() {
	for _, w := range slices.Clone(c.order) {
		c.Unregister(w)
	}
}

// Active returns the widget that currently holds a selection, if any.
func (c *Coordinator[T]) Active() (Widget[T], bool) {
	for _, w := range c.order {
		if _, ok := w.Selected(); ok {
			return w, true
		}
	}
	return nil, false
}

// clearOthers also resolves the unreachable case of several widgets being
// selected at once: everything except changed ends up empty.
func (c *Coordinator[T]) clearOthers(changed Widget[T]) {
	for _, other := range slices.Clone(c.order) {
		if other == changed {
			continue
		}
		if _, ok := other.Selected(); ok {
			other.ClearSelection()
		}
	}
}
