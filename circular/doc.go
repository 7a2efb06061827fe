// Package circular provides Sequence, a generic circular singly-linked list
// with sequential ("counting-out", Josephus-style) elimination.
//
// What
//
//   - Append values in order; the last appended node always links back to the
//     first, so the structure is a single closed cycle.
//   - Snapshot the ring from its head with Values or All (non-destructive).
//   - Remove nodes by counting around the ring:
//   - EliminateOnce: count from head, remove one node, forget the position.
//   - EliminateRun:  count, remove, continue counting from the successor of
//     the removed node, until the ring is exhausted (classic Josephus order).
//
// Representation
//
//	Nodes live in an arena (a slice) and refer to their successor by slot
//	index. The ring owns every node as a group: no node owns another, so
//	the cycle never needs pointer ownership. Removed slots go on a free list
//	and are reused by later appends.
//
//	    head                 tail
//	     │                    │
//	     ▼                    ▼
//	   [ 1 ] ─► [ 2 ] ─► [ 3 ] ─┐
//	     ▲                      │
//	     └──────────────────────┘
//
// Counting
//
//	Positions are 1-based ordinals measured from head and wrap modulo the
//	current size. A step of k counts k nodes inclusive of the origin, so the
//	removed node sits k-1 hops after it. For 1..5 with start=1 and step=3,
//	EliminateRun yields [3 1 5 2 4].
//
// Complexity (n = Len())
//
//   - Append, Len:       O(1) amortized
//   - Values, All:       O(n)
//   - EliminateOnce:     O(n) (hops are reduced modulo n)
//   - EliminateRun:      O(n²) worst case, O(n·min(k,n)) hops overall
//
// Concurrency
//
//	A Sequence is not safe for concurrent use. Callers that share one must
//	serialize access themselves.
//
// Errors
//
//   - ErrInvalidArgument  if start < 1 or step < 1.
//   - ErrEmptyCollection  if an elimination is requested on an empty Sequence.
//
// Failed calls never mutate the Sequence.
//
// Usage
//
//	s := circular.New[int]()
//	for i := 1; i <= 5; i++ {
//		s.Append(i)
//	}
//	order, err := s.EliminateRun(1, 3)
//	// order == [3 1 5 2 4], s.Len() == 0
package circular
