// Package types defines the shared contract types for fileops.
//
// Core types:
//   - Parameter: one field of an operation's argument schema
//   - Result: the two-variant (success/failure) invocation outcome
//
// Result is the stable boundary contract: every invocation yields exactly
// one Result, and a Result never carries both an output and an error.
package types
