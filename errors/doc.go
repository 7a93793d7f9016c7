// Package errors provides structured error types for the wasmbridge
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category) and carry an optional detail message and cause chain.
// The descriptor and value layers are error-free by design - their
// operations tolerate nil and report documented defaults - so these types
// are used by the engine layer only.
//
//	err := errors.Load("compile module", cause)
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData}) { ... }
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
