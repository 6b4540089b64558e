package indexset

// Interface is a set of non-negative positions into some sequence.
type Interface interface {
	// Adds a position to the set.
	Add(int) bool

	// Removes a position from the set.
	Remove(int) bool

	// Removes all positions from the set.
	Clear() bool

	// Returns whether the provided positions are in the set.
	Contains(...int) bool

	// Returns the number of positions in the set.
	Length() int

	// Iterates over positions in ascending order and executes the provided
	// function against each one until it returns false.
	ForEach(func(int) bool)

	// Provides a string representation of the set.
	String() string

	// Returns the positions as an ascending slice.
	ToSlice() []int

	// Determines if the two sets hold the same positions.
	Equal(Interface) bool

	// Returns an independent copy of the set.
	Clone() Interface
}
