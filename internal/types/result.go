package types

// Result represents the outcome of a single operation invocation.
// Exactly one of Output or Error is populated.
type Result struct {
	Success bool    `json:"success"`
	Output  string  `json:"output,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Ok builds a success result carrying the operation's text report
func Ok(output string) Result {
	return Result{Success: true, Output: output}
}

// Fail builds a failure result carrying a human-readable message
func Fail(message string) Result {
	return Result{Success: false, Error: &message}
}
