package selection

import "slices"

// List is a single-selection list of items. It is the widget the coordinator
// manages in the TUI; rendering lives with the caller.
type List[T any] struct {
	items     []T
	selected  int
	listeners []listenerEntry[T]
	nextID    int
}

type listenerEntry[T any] struct {
	id int
	fn Listener[T]
}

func NewList[T any](items []T) *List[T] {
	return &List[T]{items: slices.Clone(items), selected: -1}
}

func (l *List[T]) Items() []T { return slices.Clone(l.items) }

func (l *List[T]) Len() int { return len(l.items) }

// SelectedIndex returns -1 when nothing is selected.
func (l *List[T]) SelectedIndex() int { return l.selected }

func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.items) {
		return zero, false
	}
	return l.items[l.selected], true
}

// Select selects the item at i. It reports false when i is out of range.
// Re-selecting the current index does not notify.
func (l *List[T]) Select(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	if i == l.selected {
		return true
	}
	prev := l.itemPtr(l.selected)
	l.selected = i
	l.notify(prev, l.itemPtr(i))
	return true
}

// SelectNext moves the selection down, starting at the first item when
// nothing is selected. It stops at the last item.
func (l *List[T]) SelectNext() bool {
	if len(l.items) == 0 {
		return false
	}
	if l.selected < 0 {
		return l.Select(0)
	}
	return l.Select(min(l.selected+1, len(l.items)-1))
}

// SelectPrev moves the selection up, starting at the last item when nothing
// is selected.
func (l *List[T]) SelectPrev() bool {
	if len(l.items) == 0 {
		return false
	}
	if l.selected < 0 {
		return l.Select(len(l.items) - 1)
	}
	return l.Select(max(l.selected-1, 0))
}

func (l *List[T]) ClearSelection() {
	if l.selected < 0 {
		return
	}
	prev := l.itemPtr(l.selected)
	l.selected = -1
	l.notify(prev, nil)
}

func (l *List[T]) OnSelectionChanged(fn Listener[T]) func() {
	if fn == nil {
		panic("selection: nil listener")
	}
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, listenerEntry[T]{id: id, fn: fn})
	return func() {
		l.listeners = slices.DeleteFunc(l.listeners, func(e listenerEntry[T]) bool { return e.id == id })
	}
}

func (l *List[T]) itemPtr(i int) *T {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	item := l.items[i]
	return &item
}

func (l *List[T]) notify(prev, next *T) {
	// listeners may subscribe or unsubscribe while being notified
	for _, e := range slices.Clone(l.listeners) {
		e.fn(prev, next)
	}
}
