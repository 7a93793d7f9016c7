// Package value provides the runtime value model of the embedding
// boundary: opaque references carrying embedder-attached data, and the
// kind-tagged value variant.
//
// # References
//
// A Ref pairs an opaque host-info value, owned by the embedder, with a
// Finalizer callback describing how the embedder would release that data.
// Two Refs are Same when they carry the identical host info and the
// identical finalizer - an equivalence over the referenced host object,
// not over the Ref objects themselves.
//
// Deleting a Ref releases only the Ref: the finalizer is NOT invoked. The
// host info's lifetime stays with the embedder, so an embedder that
// expects the finalizer to fire on release must call it itself or it will
// leak; one that releases the data independently must not also call it or
// it will double-free. TestRefDeleteDoesNotInvokeFinalizer pins this
// behavior.
//
// # Values
//
// Value is a six-way tagged union over the four numeric kinds and the two
// reference kinds. Numeric payloads are plain bits; reference payloads own
// a Ref via its copy/delete protocol, so a copied reference value is
// independently destroyable from its source.
package value
