// Package batch, FIFO queue with deduplication.
// Maintains a seen set so that the same case page is processed once per run.
package batch

// Queue is a FIFO queue of case-page locations.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues a location unless its normalized form was seen before.
// It reports whether the location was added.
func (q *Queue) Add(location string) bool {
	key := NormalizeLocation(location)
	if key == "" || q.seen[key] {
		return false
	}
	q.seen[key] = true
	q.items = append(q.items, location)
	return true
}

// HasNext returns true if there are unprocessed locations.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed location and advances the pointer.
func (q *Queue) Next() string {
	loc := q.items[q.idx]
	q.idx++
	return loc
}

// Len returns the number of distinct locations enqueued.
func (q *Queue) Len() int {
	return len(q.items)
}
