package ctrlflow

import "fmt"

// Unit is the empty payload type for outcomes that carry no data.
// It stands in for T when a guard only signals "stop" without a value.
type Unit struct{}

// ControlFlow is a two-variant flow outcome: Continue ("keep going",
// no payload) or Break ("stop here", carrying a payload of type T).
//
// Exactly one variant is active at a time. The zero value is Continue.
// ControlFlow values are plain values: copy, compare, and discard them
// freely.
type ControlFlow[T any] struct {
	value T
	brk   bool
}

// NewContinue returns the Continue variant.
// Enclosing functions return this once all guards have passed.
func NewContinue[T any]() ControlFlow[T] {
	return ControlFlow[T]{}
}

// NewBreak returns the Break variant carrying value.
func NewBreak[T any](value T) ControlFlow[T] {
	return ControlFlow[T]{value: value, brk: true}
}

// IsBreak reports whether the Break variant is active.
func (f ControlFlow[T]) IsBreak() bool {
	return f.brk
}

// IsContinue reports whether the Continue variant is active.
func (f ControlFlow[T]) IsContinue() bool {
	return !f.brk
}

// BreakValue returns the Break payload and true if the Break variant is
// active, or the zero value of T and false otherwise.
func (f ControlFlow[T]) BreakValue() (T, bool) {
	return f.value, f.brk
}

// MustBreak returns the Break payload, panicking if the Continue variant
// is active. Use it only where a Break has already been established.
func (f ControlFlow[T]) MustBreak() T {
	if !f.brk {
		panic("ctrlflow: MustBreak on Continue")
	}
	return f.value
}

// String returns "Continue" or "Break(<payload>)".
func (f ControlFlow[T]) String() string {
	if f.brk {
		return fmt.Sprintf("Break(%v)", f.value)
	}
	return "Continue"
}

// Map converts the payload type of a flow outcome. A Break payload is
// passed through fn exactly once; a Continue maps to Continue and fn is
// never invoked. Use it to forward a Break into a function whose own
// outcome type differs from the guard's.
func Map[T, U any](f ControlFlow[T], fn func(T) U) ControlFlow[U] {
	if f.brk {
		return NewBreak(fn(f.value))
	}
	return NewContinue[U]()
}
