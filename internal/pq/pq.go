// Package pq is the min-priority queue shared by the A* and Dijkstra searches.
//
// It follows the "lazy decrease-key" pattern: callers push a new entry when a
// node's key improves and skip stale entries when they surface.
package pq

import "container/heap"

// item pairs a node ID with its priority key.
type item struct {
	node int
	key  float64
}

// items is a min-heap of item ordered by key ascending.
type items []item

// Len returns the number of items in the heap.
func (h items) Len() int { return len(h) }

// Less defines the comparison: smaller key → higher priority.
func (h items) Less(i, j int) bool { return h[i].key < h[j].key }

// Swap swaps two elements in the heap.
func (h items) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *items) Push(x any) { *h = append(*h, x.(item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *items) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of node IDs.
// The zero value is an empty, ready-to-use queue.
type Queue struct {
	h items
}

// New returns a queue with room for capacity entries before growing.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{h: make(items, 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return q.h.Len() }

// Push enqueues node with the given key. O(log n).
func (q *Queue) Push(node int, key float64) {
	heap.Push(&q.h, item{node: node, key: key})
}

// Pop removes the entry with the smallest key. O(log n).
// It must not be called on an empty queue.
func (q *Queue) Pop() (node int, key float64) {
	it := heap.Pop(&q.h).(item)
	return it.node, it.key
}
