// Package registry provides the static operation catalog.
//
// The registry maps each operation name to its handler and declared
// parameter schema. It is built once at startup via Default() and never
// mutated afterwards, which makes concurrent lookups safe without locking.
//
// Example Usage:
//
//	reg := registry.Default()
//	op, ok := reg.Lookup("copy_file")
package registry
