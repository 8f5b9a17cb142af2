package domain

// Result is the outcome of an inbound action.
type Result struct {
	Success bool
	// Text is the action output, if any.
	Text string
	// Err is the diagnostic for a rejected action. A nil Err with Success
	// false is a silent failure.
	Err error
}

// Ok builds a successful result with optional output text.
func Ok(text string) Result {
	return Result{Success: true, Text: text}
}

// Fail builds a failed result carrying err.
func Fail(err error) Result {
	return Result{Err: err}
}
