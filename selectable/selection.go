package selectable

import (
	"fmt"

	"go.uber.org/zap"
)

// SelectedIndexes returns the selected positions in ascending order.
func (l *List[T]) SelectedIndexes() []int {
	return l.selection.ToSlice()
}

// SelectedElements returns the elements at SelectedIndexes.
func (l *List[T]) SelectedElements() []T {
	indexes := l.SelectedIndexes()
	selected := make([]T, 0, len(indexes))

	for _, i := range indexes {
		selected = append(selected, l.elements[i])
	}

	return selected
}

// SelectedElement returns the selected element of a Single mode list. It
// always returns false in Multiple mode.
func (l *List[T]) SelectedElement() (T, bool) {
	var zero T

	if l.AllowsMultipleSelection() {
		return zero, false
	}

	selected := l.SelectedElements()
	if len(selected) == 0 {
		return zero, false
	}

	return selected[0], true
}

// IsSelected reports whether the element at index is selected.
func (l *List[T]) IsSelected(index int) bool {
	return l.selection.Contains(index)
}

// SelectionCount returns the number of selected elements.
func (l *List[T]) SelectionCount() int {
	return l.selection.Length()
}

// Select selects the first element equal to element. In Single mode any
// previous selection is replaced.
func (l *List[T]) Select(element T) error {
	i, ok := l.IndexOf(element)
	if !ok {
		return fmt.Errorf("selecting %v: %w", element, ErrInvalidElement)
	}

	l.selectIndex(i)

	return nil
}

// SelectAt selects the element at index. In Single mode any previous
// selection is replaced.
func (l *List[T]) SelectAt(index int) error {
	if !l.IsValidIndex(index) {
		return fmt.Errorf("selecting index %d of %d: %w", index, len(l.elements), ErrInvalidIndex)
	}

	l.selectIndex(index)

	return nil
}

// Deselect deselects the first element equal to element. It is not an error
// if that element was not selected.
func (l *List[T]) Deselect(element T) error {
	i, ok := l.IndexOf(element)
	if !ok {
		return fmt.Errorf("deselecting %v: %w", element, ErrInvalidElement)
	}

	l.selection.Remove(i)

	return nil
}

// DeselectAt deselects the element at index. It is not an error if that
// element was not selected.
func (l *List[T]) DeselectAt(index int) error {
	if !l.IsValidIndex(index) {
		return fmt.Errorf("deselecting index %d of %d: %w", index, len(l.elements), ErrInvalidIndex)
	}

	l.selection.Remove(index)

	return nil
}

// DeselectAll empties the selection.
func (l *List[T]) DeselectAll() {
	if l.selection.Clear() {
		l.logger.Debug("selection cleared")
	}
}

// ClearSelection is an alias for DeselectAll.
func (l *List[T]) ClearSelection() {
	l.DeselectAll()
}

func (l *List[T]) selectIndex(i int) {
	if l.mode != Multiple {
		l.selection.Clear()
	}

	l.selection.Add(i)

	l.logger.Debug("selected", zap.Int("index", i), zap.Stringer("mode", l.mode))
}
