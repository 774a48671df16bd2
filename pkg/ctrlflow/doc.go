/*
Package ctrlflow converts boolean conditions into early-exit signals,
replacing chains of conditional-return boilerplate with single expressions.

# The Problem

Functions that bail out early based on conditions accumulate noise:

	func process(req Request) {
	    if req.Empty() {
	        return
	    }
	    // ...
	    if req.Expired() {
	        return
	    }
	    // ...
	}

ctrlflow expresses each guard as one conversion from the condition to a
two-variant ControlFlow value, which the caller returns on Break:

	func process(req Request) ctrlflow.ControlFlow[ctrlflow.Unit] {
	    if f := ctrlflow.Break(req.Empty()); f.IsBreak() {
	        return f
	    }
	    // ...
	    if f := ctrlflow.Break(req.Expired()); f.IsBreak() {
	        return f
	    }
	    // ...
	    return ctrlflow.NewContinue[ctrlflow.Unit]()
	}

# Flow Outcomes

ControlFlow[T] has exactly two variants:

  - Continue: keep going. Carries no payload.
  - Break(T): stop here and yield the payload to the caller.

Break is not an error. It is a deliberate, successful early-termination
signal whose payload type T is chosen freely by the caller.

# Conversion Operations

Six operations cover both readings of a guard condition. Break treats
true as the signal to stop ("stop if X"); Continue treats false as the
signal to stop ("proceed only if X"):

	ctrlflow.Break(cond)                  // true  -> Break(Unit{})
	ctrlflow.BreakWith(cond, v)           // true  -> Break(v), v eager
	ctrlflow.BreakLazy(cond, f)           // true  -> Break(f()), f lazy
	ctrlflow.Continue(cond)               // false -> Break(Unit{})
	ctrlflow.ContinueOr(cond, v)          // false -> Break(v), v eager
	ctrlflow.ContinueOrElse(cond, f)      // false -> Break(f()), f lazy

The lazy forms defer payload construction (say, formatting a message)
until the Break branch is actually taken; the producer runs exactly once
on that branch and never on the other. The eager forms suit payloads that
are already in hand.

Only the built-in bool participates: the operations take bool directly,
so no other type can attach its own conversion semantics.

# Propagating Outcomes

Go has no dedicated propagation operator, so the convention is an
explicit early return at each guard site. When the enclosing function's
payload type differs from the guard's, Map converts the Break payload:

	func validate(name string) ctrlflow.ControlFlow[string] {
	    if f := ctrlflow.ContinueOrElse(name != "", func() string {
	        return "name must not be empty"
	    }); f.IsBreak() {
	        return f
	    }
	    return ctrlflow.NewContinue[string]()
	}

All operations are pure, total, and deterministic; every value is
computed synchronously on the caller's goroutine. ControlFlow values are
plain values, safe to copy and compare.
*/
package ctrlflow
