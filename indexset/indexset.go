package indexset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scylladb/go-set/iset"
)

// Set is not safe for concurrent use.
type Set struct {
	s *iset.Set
}

// Ensure Set satisfies indexset.Interface at compile-time.
var _ Interface = (*Set)(nil)

// New returns a set initialized with the provided positions.
func New(items ...int) Interface {
	return &Set{s: iset.New(items...)}
}

// Add a position to the set.
func (s *Set) Add(item int) bool {
	if s.s.Has(item) {
		return false
	}

	s.s.Add(item)

	return true
}

// Remove a position from the set.
func (s *Set) Remove(item int) bool {
	if !s.s.Has(item) {
		return false
	}

	s.s.Remove(item)

	return true
}

// Clear removes all positions from the set and reports whether anything was
// removed.
func (s *Set) Clear() bool {
	if s.s.IsEmpty() {
		return false
	}

	s.s.Clear()

	return true
}

// Contains determines whether all of the provided positions are in the set.
func (s *Set) Contains(items ...int) bool {
	return s.s.Has(items...)
}

// Length returns the number of positions in the set.
func (s *Set) Length() int {
	return s.s.Size()
}

// ForEach iterates over positions in ascending order until fn returns false.
func (s *Set) ForEach(fn func(int) bool) {
	for _, item := range s.ToSlice() {
		if !fn(item) {
			return
		}
	}
}

// String provides a string representation of the set.
func (s *Set) String() string {
	items := s.ToSlice()
	parts := make([]string, 0, len(items))

	for _, item := range items {
		parts = append(parts, strconv.Itoa(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(parts, ", "))
}

// ToSlice returns the set as an ascending slice.
func (s *Set) ToSlice() []int {
	items := make([]int, 0, s.s.Size())

	s.s.Each(func(item int) bool {
		items = append(items, item)
		return true
	})

	sort.Ints(items)

	return items
}

// Equal determines if the two sets are equal.
func (s *Set) Equal(other Interface) bool {
	if o, ok := other.(*Set); ok {
		return s.s.IsEqual(o.s)
	}

	if s.Length() != other.Length() {
		return false
	}

	equal := true

	other.ForEach(func(item int) bool {
		equal = s.s.Has(item)
		return equal
	})

	return equal
}

// Clone returns a copy of the set sharing no state with the original.
func (s *Set) Clone() Interface {
	return &Set{s: s.s.Copy()}
}
