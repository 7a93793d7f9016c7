// Package vec provides the owned, fixed-length sequence containers used to
// pass variable-length collections across the embedding boundary.
//
// Two flavors share one contract:
//
//	Scalar[T] - flat value elements; copy is element-wise, delete frees the
//	            backing buffer only
//	Ptr[T]    - independently owned element pointers; copy duplicates each
//	            element via its own Copy, delete destroys each element first
//
// # Ownership
//
// A vector owns its backing buffer and, for Ptr, every element in it.
// Construction with NewPtr moves the supplied pointers in: the caller's
// source slots are cleared so the transfer is observable and double
// ownership is impossible. Delete resets the vector to the empty state
// (size 0, nil data), so deleting the same vector twice is a safe no-op.
//
// # Empty vectors
//
// An empty vector always has size 0 and nil data, however it became empty.
// Requesting a zero-length allocation never produces a non-nil buffer, so
// callers must check Size before interpreting Data.
//
// All operations tolerate nil receivers and nil sources.
package vec
