// Package engine provides the Engine and Store shells that own the
// underlying WebAssembly runtime.
//
// This package wraps wazero. The Engine owns a configuration snapshot and
// the wazero runtime built from it; the Store borrows the Engine that
// constructed it and provides the loading surface on top of it.
//
// # Lifecycle
//
//	engine := engine.NewEngine(ctx)
//	defer engine.Close(ctx)
//
//	store := engine.NewStore(engine) // nil engine yields nil
//	defer store.Close(ctx)
//
//	mod, err := store.Load(ctx, wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	imports := mod.Imports() // owned vector of *types.ImportType
//	defer imports.Delete()
//
// A Store never outlives valid use of its Engine but does not extend the
// Engine's lifetime; closing the Store releases only the modules it
// loaded. Close on either is idempotent and nil-safe.
//
// # Concurrency
//
// Engine and Store are not internally synchronized. Callers sharing them
// across goroutines must serialize access themselves.
package engine
