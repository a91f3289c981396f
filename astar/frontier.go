package astar

import "container/heap"

// frontier is a min-heap of arena indices ordered by (F, H, index).
// Arena indices grow with discovery, so the last key keeps the node
// discovered first ahead of later ones with identical scores.
type frontier struct {
	items []int32
	arena *[]Node
}

// Len returns the number of open nodes.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by F, then H, then discovery order.
func (f *frontier) Less(i, j int) bool {
	a, b := &(*f.arena)[f.items[i]], &(*f.arena)[f.items[j]]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H
	}

	return f.items[i] < f.items[j]
}

// Swap swaps two elements in the heap.
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds a new arena index; called by heap.Push.
func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(int32)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}

func (f *frontier) push(idx int32) { heap.Push(f, idx) }

func (f *frontier) pop() int32 { return heap.Pop(f).(int32) }

// peek returns the best index without removing it. The heap must be non-empty.
func (f *frontier) peek() int32 { return f.items[0] }
