package pipeline

// ActiveEvents selects which events are generated for a collider. The zero
// value has every event category disabled. Masks combine with the bitwise
// or operator.
type ActiveEvents uint32

const (
	// IntersectionEvents enables EventHandler.HandleIntersectionEvent calls
	// whenever relevant for the collider.
	IntersectionEvents ActiveEvents = 0b0001
	// ContactEvents enables EventHandler.HandleContactEvent calls whenever
	// relevant for the collider.
	ContactEvents ActiveEvents = 0b0010
)

// Contains reports whether every bit of other is set in the mask.
func (e ActiveEvents) Contains(other ActiveEvents) bool {
	return e&other == other
}
