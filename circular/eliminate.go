// SPDX-License-Identifier: MIT
// Package: lvring/circular
//
// eliminate.go — counting-out removal: EliminateOnce and EliminateRun.
//
// Contract:
//   • Validation happens before any mutation (start ≥ 1, step ≥ 1, non-empty).
//   • The node removed for origin o and step k is the one k-1 hops after o.
//   • Hop counts are reduced modulo the current size, so a walk never laps.
//   • The predecessor of the target is located first; walking from tail to
//     reach offset d from head lands on the node preceding offset d.
//
// Complexity:
//   • EliminateOnce: O(n).
//   • EliminateRun:  n rounds of at most n-1 hops each.

package circular

import "fmt"

// EliminateOnce counts step nodes starting at the start-th node from head,
// removes the node counted to, and returns its value. Every call counts
// from the current head; no position is carried between calls.
//
// A Sequence of one node always yields that node.
//
// Errors: ErrInvalidArgument if start < 1 or step < 1,
// ErrEmptyCollection if the Sequence is empty.
func (s *Sequence[T]) EliminateOnce(start, step int) (T, error) {
	var zero T
	if err := validateCount(methodEliminateOnce, start, step); err != nil {
		return zero, err
	}
	if s.count == 0 {
		return zero, fmt.Errorf("%s: %w", methodEliminateOnce, ErrEmptyCollection)
	}

	// offset of the target from head, 0-based
	offset := ((start-1)%s.count + (step-1)%s.count) % s.count
	pred := s.advance(s.tail, offset)

	return s.unlinkAfter(pred), nil
}

// EliminateRun removes every node in counting-out order and returns the
// removed values. The first count starts at the start-th node from head;
// each later count starts at the node following the one just removed.
// The result holds exactly Len() values and the Sequence ends empty.
//
// Errors: ErrInvalidArgument if start < 1 or step < 1,
// ErrEmptyCollection if the Sequence is empty.
func (s *Sequence[T]) EliminateRun(start, step int, opts ...RunOption[T]) ([]T, error) {
	if err := validateCount(methodEliminateRun, start, step); err != nil {
		return nil, err
	}
	if s.count == 0 {
		return nil, fmt.Errorf("%s: %w", methodEliminateRun, ErrEmptyCollection)
	}

	o := DefaultRunOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]T, 0, s.count)
	// pred is always the predecessor of the current counting origin.
	pred := s.advance(s.tail, (start-1)%s.count)
	for round := 1; s.count > 0; round++ {
		pred = s.advance(pred, (step-1)%s.count)
		v := s.unlinkAfter(pred)
		out = append(out, v)
		o.OnEliminate(round, v)
	}

	return out, nil
}

// unlinkAfter removes the successor of pred and returns its value.
// pred must be a live slot of a non-empty Sequence.
func (s *Sequence[T]) unlinkAfter(pred int) T {
	target := s.nodes[pred].next

	if s.count == 1 {
		s.head, s.tail = nilSlot, nilSlot
	} else {
		s.nodes[pred].next = s.nodes[target].next
		if target == s.head {
			s.head = s.nodes[target].next
		}
		if target == s.tail {
			s.tail = pred
		}
	}
	s.count--

	return s.release(target)
}
