package game

// moveQueue serializes directional input. Directions accepted while a move
// is being committed are buffered; at most one move is in flight at any
// time, and buffered directions drain strictly in arrival order after the
// in-flight move's full effect (including the terminal check) completes.
//
// The queue is the only concurrency-control primitive the engine needs:
// move commitment spans animation ticks, and without serialization two
// rapid inputs would interleave position assignment.
type moveQueue struct {
	pending  []Direction
	inFlight bool
}

// Push appends a direction to the queue.
func (q *moveQueue) Push(d Direction) {
	q.pending = append(q.pending, d)
}

// Pop hands out the oldest buffered direction and marks a move in flight.
// Returns false while a move is already in flight or the queue is empty.
func (q *moveQueue) Pop() (Direction, bool) {
	if q.inFlight || len(q.pending) == 0 {
		return 0, false
	}
	d := q.pending[0]
	q.pending = q.pending[1:]
	q.inFlight = true
	return d, true
}

// Done marks the in-flight move complete, allowing the next Pop.
func (q *moveQueue) Done() {
	q.inFlight = false
}

// InFlight reports whether a move is currently being committed.
func (q *moveQueue) InFlight() bool {
	return q.inFlight
}

// Len returns the number of buffered directions.
func (q *moveQueue) Len() int {
	return len(q.pending)
}

// Clear drops all buffered directions. The in-flight flag is untouched:
// once dequeued, a move always runs to completion.
func (q *moveQueue) Clear() {
	q.pending = q.pending[:0]
}
