// Package selectable provides a list of elements with built-in selection
// tracking.
package selectable

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/rdeusser/selectable/indexset"
)

// EqualFunc reports whether a and b represent the same logical element.
type EqualFunc[T any] func(a, b T) bool

// List is an ordered sequence of elements paired with the set of selected
// positions. The selection always refers to valid indexes; replacing the
// elements re-derives it by matching the previously selected values.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	elements  []T
	selection indexset.Interface
	equal     EqualFunc[T]
	mode      Mode
	logger    *zap.Logger
}

// New returns a List holding a copy of elements with nothing selected. A nil
// equal falls back to reflect.DeepEqual.
func New[T any](elements []T, mode Mode, equal EqualFunc[T], opts ...Option) *List[T] {
	o := newOptions(opts)

	if equal == nil {
		equal = func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		}
	}

	return &List[T]{
		elements:  slices.Clone(elements),
		selection: indexset.New(),
		equal:     equal,
		mode:      mode,
		logger:    o.logger,
	}
}

// NewComparable returns a List whose elements are compared with ==.
func NewComparable[T comparable](elements []T, mode Mode, opts ...Option) *List[T] {
	return New(elements, mode, func(a, b T) bool {
		return a == b
	}, opts...)
}

// Clone returns a copy of l that shares no mutable state with it.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		elements:  slices.Clone(l.elements),
		selection: l.selection.Clone(),
		equal:     l.equal,
		mode:      l.mode,
		logger:    l.logger,
	}
}

// SetElements replaces the elements. Every previously selected value stays
// selected at the first index of an equal element in the new sequence;
// values with no match are dropped.
func (l *List[T]) SetElements(elements []T) {
	previous := l.SelectedElements()

	l.elements = slices.Clone(elements)
	l.selection = indexset.New()

	dropped := 0

	for _, old := range previous {
		if i, ok := l.IndexOf(old); ok {
			l.selection.Add(i)
		} else {
			dropped++
		}
	}

	if dropped > 0 {
		l.logger.Debug("dropped selected elements missing from new sequence",
			zap.Int("dropped", dropped),
			zap.Int("selected", l.selection.Length()),
			zap.Int("length", len(l.elements)),
		)
	}
}

// Elements returns a copy of the elements.
func (l *List[T]) Elements() []T {
	return slices.Clone(l.elements)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.elements)
}

// Mode returns the selection mode the list was created with.
func (l *List[T]) Mode() Mode {
	return l.mode
}

// AllowsMultipleSelection reports whether more than one element may be
// selected.
func (l *List[T]) AllowsMultipleSelection() bool {
	return l.mode == Multiple
}

// IsValidIndex reports whether index refers to an element.
func (l *List[T]) IsValidIndex(index int) bool {
	return index >= 0 && index < len(l.elements)
}

// ElementAt returns the element at index, or false if there is none.
func (l *List[T]) ElementAt(index int) (T, bool) {
	if !l.IsValidIndex(index) {
		var zero T
		return zero, false
	}

	return l.elements[index], true
}

// IndexOf returns the index of the first element equal to element.
func (l *List[T]) IndexOf(element T) (int, bool) {
	for i, e := range l.elements {
		if l.equal(e, element) {
			return i, true
		}
	}

	return -1, false
}

// String renders the list with selected elements in brackets.
func (l *List[T]) String() string {
	items := make([]string, 0, len(l.elements))

	for i, e := range l.elements {
		if l.selection.Contains(i) {
			items = append(items, fmt.Sprintf("[%v]", e))
		} else {
			items = append(items, fmt.Sprint(e))
		}
	}

	return fmt.Sprintf("List{%s}", strings.Join(items, ", "))
}
