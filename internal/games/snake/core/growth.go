package core

// GrowthQueue holds reward cells the snake has eaten but whose extra segment
// has not been added yet. A marker is settled when the tail reaches its cell.
//
// GrowthQueue is a value: Enqueue and Settle return a new queue and never
// modify the receiver's backing array.
type GrowthQueue struct {
	markers []Coordinate
}

// NewGrowthQueue builds a queue holding the given markers in order.
func NewGrowthQueue(markers ...Coordinate) GrowthQueue {
	if len(markers) == 0 {
		return GrowthQueue{}
	}
	return GrowthQueue{markers: append([]Coordinate(nil), markers...)}
}

// Enqueue returns a queue with a growth marker added at c.
func (q GrowthQueue) Enqueue(c Coordinate) GrowthQueue {
	next := make([]Coordinate, len(q.markers), len(q.markers)+1)
	copy(next, q.markers)
	return GrowthQueue{markers: append(next, c)}
}

// Settle checks the queue against the tail cell. If a marker equals tail,
// exactly one such marker is removed and grow is true. Duplicate markers on
// the same cell are settled on separate calls.
func (q GrowthQueue) Settle(tail Coordinate) (rest GrowthQueue, grow bool) {
	for i, m := range q.markers {
		if m != tail {
			continue
		}
		next := make([]Coordinate, 0, len(q.markers)-1)
		next = append(next, q.markers[:i]...)
		next = append(next, q.markers[i+1:]...)
		return GrowthQueue{markers: next}, true
	}
	return q, false
}

// Pending reports whether a marker sits on c.
func (q GrowthQueue) Pending(c Coordinate) bool {
	return contains(q.markers, c)
}

// Len returns the number of unsettled markers.
func (q GrowthQueue) Len() int {
	return len(q.markers)
}

// Markers returns a copy of the unsettled markers, oldest first.
func (q GrowthQueue) Markers() []Coordinate {
	return append([]Coordinate(nil), q.markers...)
}
