package contract

import "context"

// Completer is the completion-service boundary: plain text in, plain text
// out. Implementations may block up to their configured timeout; any error
// is treated by callers as service unavailability.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Resolver maps free-form user input to one tool invocation and returns the
// user-facing response. Resolve never fails; every input terminates in text.
type Resolver interface {
	Resolve(ctx context.Context, input string) string
}
