package fileops

import "fmt"

// ErrorKind classifies the anticipated failure modes of a handler
type ErrorKind int

const (
	// ErrNotFound means the target path does not exist
	ErrNotFound ErrorKind = iota + 1
	// ErrWrongKind means the path exists but is a file where a directory
	// is needed, or vice versa
	ErrWrongKind
	// ErrAlreadyExists means a create/copy target collides with an
	// existing path
	ErrAlreadyExists
	// ErrPermissionDenied means the OS refused access during enumeration
	ErrPermissionDenied
	// ErrInvalidFormat means a malformed permissions string
	ErrInvalidFormat
)

// OpError is an anticipated handler failure. Its message is returned to the
// caller verbatim; anything else a handler returns gets wrapped with the
// operation name by the dispatcher.
type OpError struct {
	Kind    ErrorKind
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

func notFoundf(format string, args ...interface{}) error {
	return &OpError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func wrongKindf(format string, args ...interface{}) error {
	return &OpError{Kind: ErrWrongKind, Message: fmt.Sprintf(format, args...)}
}

func alreadyExistsf(format string, args ...interface{}) error {
	return &OpError{Kind: ErrAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func permissionDeniedf(format string, args ...interface{}) error {
	return &OpError{Kind: ErrPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

func invalidFormatf(format string, args ...interface{}) error {
	return &OpError{Kind: ErrInvalidFormat, Message: fmt.Sprintf(format, args...)}
}
