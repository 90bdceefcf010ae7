package fileops

import "context"

// Request carries the validated, defaulted arguments for one invocation.
// String fields are empty when the caller omitted them; the dispatcher
// guarantees required fields are non-empty before a handler runs.
type Request struct {
	Path        string
	Destination string
	Pattern     string
	Permissions string
	Recursive   bool
	ShowHidden  bool
}

// Handler implements one operation against the file system. It returns the
// operation's text report, or an error: an *OpError surfaces its message
// verbatim, anything else is wrapped by the dispatcher.
type Handler func(ctx context.Context, req Request) (string, error)
