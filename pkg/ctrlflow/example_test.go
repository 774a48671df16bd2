package ctrlflow_test

import (
	"fmt"

	"github.com/randalmurphal/ctrlflow/pkg/ctrlflow"
)

func ExampleBreak() {
	fmt.Println(ctrlflow.Break(true))
	fmt.Println(ctrlflow.Break(false))
	// Output:
	// Break({})
	// Continue
}

func ExampleBreakLazy() {
	// The producer runs only when the condition actually breaks.
	f := ctrlflow.BreakLazy(true, func() string {
		return "limit exceeded"
	})
	fmt.Println(f)

	f = ctrlflow.BreakLazy(false, func() string {
		panic("never reached")
	})
	fmt.Println(f)
	// Output:
	// Break(limit exceeded)
	// Continue
}

func ExampleContinueOrElse() {
	validate := func(name string) ctrlflow.ControlFlow[string] {
		if f := ctrlflow.ContinueOrElse(name != "", func() string {
			return "name must not be empty"
		}); f.IsBreak() {
			return f
		}
		return ctrlflow.NewContinue[string]()
	}

	fmt.Println(validate("flow"))
	fmt.Println(validate(""))
	// Output:
	// Continue
	// Break(name must not be empty)
}

func ExampleMap() {
	guard := ctrlflow.Break(true)
	f := ctrlflow.Map(guard, func(ctrlflow.Unit) int {
		return 429
	})
	fmt.Println(f)
	// Output:
	// Break(429)
}
