// SPDX-License-Identifier: MIT
// Package: lvring/circular
//
// types.go — sentinel errors and functional options for Sequence.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Operations wrap sentinels with method context via %w.
//   • Operations never panic; option constructors panic on meaningless input.

package circular

import (
	"errors"
	"fmt"
)

// Sentinel errors for Sequence operations.
var (
	// ErrInvalidArgument indicates a start position or step below 1.
	ErrInvalidArgument = errors.New("circular: invalid argument")

	// ErrEmptyCollection indicates an elimination on an empty Sequence.
	ErrEmptyCollection = errors.New("circular: empty collection")
)

// Method tags used as error context.
const (
	methodEliminateOnce = "EliminateOnce"
	methodEliminateRun  = "EliminateRun"
)

// Option configures a Sequence at construction time.
type Option func(*config)

// config holds construction-time settings resolved from Options.
type config struct {
	capacity int
}

// WithCapacity preallocates room for n nodes in the arena.
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("circular: WithCapacity(%d): negative capacity", n))
	}
	return func(c *config) {
		c.capacity = n
	}
}

// RunOption configures a single EliminateRun call.
type RunOption[T any] func(*RunOptions[T])

// RunOptions holds callbacks for EliminateRun.
type RunOptions[T any] struct {
	// OnEliminate is called after each removal with the 1-based round
	// number and the removed value.
	OnEliminate func(round int, v T)
}

// DefaultRunOptions returns RunOptions with a no-op OnEliminate hook.
func DefaultRunOptions[T any]() RunOptions[T] {
	return RunOptions[T]{
		OnEliminate: func(int, T) {},
	}
}

// WithOnEliminate registers a hook invoked after each removal.
// A nil fn leaves the default no-op in place.
func WithOnEliminate[T any](fn func(round int, v T)) RunOption[T] {
	return func(o *RunOptions[T]) {
		if fn != nil {
			o.OnEliminate = fn
		}
	}
}

// validateCount rejects non-positive start or step values.
func validateCount(method string, start, step int) error {
	if start < 1 || step < 1 {
		return fmt.Errorf("%s: start=%d step=%d: %w", method, start, step, ErrInvalidArgument)
	}
	return nil
}
