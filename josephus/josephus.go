package josephus

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvring/circular"
)

var (
	// ErrBadSize indicates a circle with fewer than one person.
	ErrBadSize = errors.New("josephus: n must be at least 1")

	// ErrBadStep indicates a count below 1.
	ErrBadStep = errors.New("josephus: k must be at least 1")

	// ErrBadStart indicates a starting position below 1.
	ErrBadStart = errors.New("josephus: start must be at least 1")
)

// Order returns the elimination order of people 1..n when every k-th person
// leaves, counting first from person start. Positions past n wrap around.
func Order(n, k, start int) ([]int, error) {
	if err := validate(n, k); err != nil {
		return nil, err
	}
	if start < 1 {
		return nil, fmt.Errorf("start=%d: %w", start, ErrBadStart)
	}

	ring := circular.New[int](circular.WithCapacity(n))
	for p := 1; p <= n; p++ {
		ring.Append(p)
	}

	order, err := ring.EliminateRun(start, k)
	if err != nil {
		return nil, fmt.Errorf("josephus: n=%d k=%d start=%d: %w", n, k, start, err)
	}
	return order, nil
}

// Survivor returns the 1-based position of the last person standing when
// counting starts at person 1.
// Complexity: O(n) time, O(1) space.
func Survivor(n, k int) (int, error) {
	if err := validate(n, k); err != nil {
		return 0, err
	}

	j := 0 // 0-based survivor for a circle of one
	for i := 2; i <= n; i++ {
		j = (j + k%i) % i
	}
	return j + 1, nil
}

// SurvivorK2 returns Survivor(n, 2) in O(1).
func SurvivorK2(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrBadSize)
	}
	high := 1 << (bits.Len(uint(n)) - 1)
	return 2*(n-high) + 1, nil
}

func validate(n, k int) error {
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrBadSize)
	}
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrBadStep)
	}
	return nil
}
