package core

import (
	"sync"

	"AquaRover/internal/model"
)

// WaypointQueue is an ordered list of autonomous targets consumed front to
// back. Safe for concurrent use; callers push from their own goroutines
// while the advance entry point pops.
type WaypointQueue struct {
	mu    sync.Mutex
	items []model.Waypoint
}

// Push appends a waypoint to the back of the queue.
func (q *WaypointQueue) Push(w model.Waypoint) {
	q.mu.Lock()
	q.items = append(q.items, w)
	q.mu.Unlock()
}

// PopFront removes and returns the head of the queue. The second return is
// false when the queue is empty; an empty queue is not an error.
func (q *WaypointQueue) PopFront() (model.Waypoint, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return model.Waypoint{}, false
	}
	w := q.items[0]
	q.items = q.items[1:]
	return w, true
}

// Len returns the number of waypoints still queued.
func (q *WaypointQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
