// Package lvring is a small library of circular sequences and the
// counting-out (Josephus) eliminations performed on them.
//
// What is in the box?
//
//	• circular/ — Sequence[T]: a generic circular singly-linked list kept in a
//	  node arena, with Append, Len, Values/All and two elimination modes:
//	    EliminateOnce — count from head, remove one value
//	    EliminateRun  — keep counting from each survivor until the ring is empty
//	• josephus/ — Order, Survivor and the k=2 closed form over people 1..n
//	• scenario/ — YAML/TOML scenario files executed against a Sequence
//	• cmd/josephus — command-line driver with env/YAML configuration
//
// Quick ASCII example (n=5, k=3, counting starts at 1):
//
//	    1 ─► 2 ─► 3 ─► 4 ─► 5 ─┐
//	    ▲                      │
//	    └──────────────────────┘
//
//	removal order: 3 1 5 2 4
//
// Pure Go. A Sequence is not safe for concurrent use; share one only behind
// your own lock.
//
//	go get github.com/katalvlaran/lvring
package lvring
