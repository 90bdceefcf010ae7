// Package fileops implements the file-system operation handlers.
//
// This package is organized into specialized modules:
//   - directory: listing, creation, and deletion of directories
//   - operations: file manipulation (copy, move, delete)
//   - metadata: file information, permissions, and size reports
//   - search: glob-based file matching
//
// Every handler takes a validated Request and returns either a plain-text
// report or an error. Anticipated failures (missing path, wrong kind,
// collisions, denied access, malformed permissions) are *OpError values
// whose messages reach the caller verbatim; anything else is wrapped with
// the operation name at the dispatch boundary.
//
// Handlers are stateless: every call re-reads the file system, and
// concurrent invocations on disjoint paths are safe. Two invocations
// racing on the same path are governed by the file system itself.
package fileops
