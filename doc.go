// Package wasmbridge provides the object model and memory-ownership
// protocol for embedding a WebAssembly engine behind a stable,
// handle-based boundary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wasmbridge/      Root package (documentation)
//	├── types/       Type descriptors: value kinds, limits, extern types,
//	│                import/export aggregates
//	├── vec/         Owned vector containers (scalar and pointer flavors)
//	├── value/       Runtime values: opaque references and the tagged
//	│                value variant
//	├── engine/      Engine and Store shells over the wazero runtime
//	└── errors/      Structured error types for the engine layer
//
// # Ownership Protocol
//
// Every heap descriptor flows through exactly three operations:
// construct, copy, and delete. Copy produces an independently owned deep
// duplicate; delete releases the object and, transitively, everything it
// owns, resetting containers so a second delete is a safe no-op.
//
// Parameters documented as taken are moved into the callee: the caller's
// source is cleared and must not be reused. Parameters not documented as
// taken are borrowed and never retained past the call, with one
// documented exception: a Store keeps a non-owning reference to the
// Engine that constructed it.
//
// Passing nil to any operation is always defined: destructive operations
// are no-ops and queries return a documented default.
//
// # Quick Start
//
//	params := vec.NewPtr([]*types.ValType{
//		types.NewValType(types.KindI32),
//		types.NewValType(types.KindI64),
//	})
//	results := vec.NewPtr([]*types.ValType{
//		types.NewValType(types.KindF32),
//	})
//	ft := types.NewFuncType(&params, &results)
//	defer ft.Delete()
//
//	ext := ft.AsExternType()         // identity-preserving upcast
//	_ = ext.AsFuncType() == ft       // true
//
// # Concurrency
//
// No object in this model is internally synchronized. Callers sharing an
// Engine or Store across goroutines must serialize access themselves.
package wasmbridge
