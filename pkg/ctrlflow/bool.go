package ctrlflow

// The conversion operations take the built-in bool directly rather than
// a defined receiver type. Go methods cannot carry type parameters, and
// accepting only bool keeps the capability closed: no other type can
// attach its own conversion semantics.

// Break converts a condition read as "stop if true":
// Break(Unit{}) when b is true, Continue otherwise.
func Break(b bool) ControlFlow[Unit] {
	return BreakWith(b, Unit{})
}

// BreakWith is Break with an eager payload: Break(value) when b is true,
// Continue otherwise. value is evaluated by the caller either way;
// prefer BreakLazy when constructing it is expensive.
func BreakWith[T any](b bool, value T) ControlFlow[T] {
	if b {
		return NewBreak(value)
	}
	return NewContinue[T]()
}

// BreakLazy is Break with a deferred payload: Break(producer()) when b
// is true, Continue otherwise. The producer is invoked exactly once on
// the true branch and never on the false branch.
func BreakLazy[T any](b bool, producer func() T) ControlFlow[T] {
	if b {
		return NewBreak(producer())
	}
	return NewContinue[T]()
}

// Continue converts a condition read as "proceed only if true":
// Continue when b is true, Break(Unit{}) otherwise.
func Continue(b bool) ControlFlow[Unit] {
	return ContinueOr(b, Unit{})
}

// ContinueOr is Continue with an eager payload: Continue when b is true,
// Break(value) otherwise. value is evaluated by the caller either way.
func ContinueOr[T any](b bool, value T) ControlFlow[T] {
	if b {
		return NewContinue[T]()
	}
	return NewBreak(value)
}

// ContinueOrElse is Continue with a deferred payload: Continue when b is
// true, Break(producer()) otherwise. The producer is invoked exactly
// once on the false branch and never on the true branch.
func ContinueOrElse[T any](b bool, producer func() T) ControlFlow[T] {
	if b {
		return NewContinue[T]()
	}
	return NewBreak(producer())
}
