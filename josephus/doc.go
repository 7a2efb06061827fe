// Package josephus answers counting-out questions about people numbered
// 1..n standing in a circle.
//
// What
//
//   - Order:      the full elimination order, simulated on a circular.Sequence.
//   - Survivor:   the last person standing, by the O(n) recurrence
//     J(1) = 0, J(i) = (J(i-1) + k) mod i, reported 1-based.
//   - SurvivorK2: the closed form for k = 2: writing n = 2^m + L with
//     0 ≤ L < 2^m, the survivor is 2L + 1.
//
// Survivor and SurvivorK2 never build a ring, so they are the cheap way to
// cross-check the last element of Order.
//
// Errors
//
//   - ErrBadSize  if n < 1.
//   - ErrBadStep  if k < 1.
//   - ErrBadStart if start < 1.
//
// Usage
//
//	order, _ := josephus.Order(7, 3, 1) // [3 6 2 7 5 1 4]
//	last, _ := josephus.Survivor(41, 3) // 31
package josephus
