// SPDX-License-Identifier: MIT
// Package: lvring/circular
//
// sequence.go — Sequence type, arena management, Append and snapshots.
//
// Contract:
//   • count == 0  ⇔ head and tail are undefined: nilSlot after New or after
//     the last removal, unset in a zero Sequence. Emptiness is read from
//     count, never from head.
//   • count == 1  ⇔ head == tail and nodes[head].next == head.
//   • count ≥ 2   ⇔ following next from head count times returns to head,
//     visiting count distinct slots, and nodes[tail].next == head.
//   • len(nodes) == count + len(free).

package circular

import "iter"

// nilSlot marks an undefined head or tail.
const nilSlot = -1

// node is one arena slot. next is the slot index of the successor.
type node[T any] struct {
	value T
	next  int
}

// Sequence is a circular singly-linked list of values of type T.
// The zero value is an empty Sequence ready to use; New adds options.
type Sequence[T any] struct {
	nodes []node[T]
	free  []int
	head  int
	tail  int
	count int
}

// New returns an empty Sequence configured by opts.
func New[T any](opts ...Option) *Sequence[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sequence[T]{
		nodes: make([]node[T], 0, cfg.capacity),
		head:  nilSlot,
		tail:  nilSlot,
	}
}

// Len returns the number of values in the ring.
func (s *Sequence[T]) Len() int {
	return s.count
}

// Append links v after the current tail and closes the ring back to head.
// Complexity: O(1) amortized.
func (s *Sequence[T]) Append(v T) {
	slot := s.alloc(v)
	if s.count == 0 {
		// cycle of one
		s.nodes[slot].next = slot
		s.head = slot
	} else {
		s.nodes[s.tail].next = slot
		s.nodes[slot].next = s.head
	}
	s.tail = slot
	s.count++
}

// Values returns the values in ring order starting at head.
// The result is a fresh slice; an empty Sequence yields an empty slice.
func (s *Sequence[T]) Values() []T {
	out := make([]T, 0, s.count)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the values in ring order starting at head.
// Each range over the iterator restarts from the current head. The Sequence
// must not be modified while iterating.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := s.head
		for i := 0; i < s.count; i++ {
			if !yield(s.nodes[cur].value) {
				return
			}
			cur = s.nodes[cur].next
		}
	}
}

// alloc stores v in a free slot, growing the arena when none is available.
func (s *Sequence[T]) alloc(v T) int {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		s.nodes[slot] = node[T]{value: v, next: nilSlot}
		return slot
	}
	s.nodes = append(s.nodes, node[T]{value: v, next: nilSlot})
	return len(s.nodes) - 1
}

// release clears slot and makes it reusable.
func (s *Sequence[T]) release(slot int) T {
	v := s.nodes[slot].value
	s.nodes[slot] = node[T]{next: nilSlot}
	s.free = append(s.free, slot)
	return v
}

// advance follows next hops times starting at slot.
func (s *Sequence[T]) advance(slot, hops int) int {
	for i := 0; i < hops; i++ {
		slot = s.nodes[slot].next
	}
	return slot
}
