// Package dispatch routes invocations to operation handlers.
//
// The dispatcher owns the boundary guarantees:
//   - unknown operations and missing required arguments are rejected
//     before any handler runs, with zero side effects
//   - anticipated handler failures surface their message verbatim
//   - unanticipated errors and panics are wrapped with the operation
//     name and never propagate past Invoke
package dispatch
