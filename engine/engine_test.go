package engine

import (
	"context"
	"testing"

	"github.com/wasmbridge/wasmbridge/types"
)

// addModule exports add: func(i32, i32) -> (i32).
var addModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // type (i32,i32)->(i32)
	0x03, 0x02, 0x01, 0x00, // function section
	0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00, // export "add"
	0x0a, 0x09, 0x01, 0x07, 0x00, // code section, one body
	0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b, // local.get 0; local.get 1; i32.add; end
}

// importModule imports env.log: func() -> () and env.mem: memory {min 1}.
var importModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type ()->()
	0x02, 0x16, 0x02, // import section, two entries
	0x03, 'e', 'n', 'v', 0x03, 'l', 'o', 'g', 0x00, 0x00, // func import
	0x03, 'e', 'n', 'v', 0x03, 'm', 'e', 'm', 0x02, 0x00, 0x01, // memory import
}

func TestEngineLifecycle(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	if eng == nil {
		t.Fatal("Expected engine")
	}
	cfg := eng.Config()
	if cfg == nil || cfg.MemoryLimitPages != 0 {
		t.Fatal("Default configuration expected")
	}

	if err := eng.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := eng.Close(ctx); err != nil {
		t.Fatalf("Repeated close must be a no-op: %v", err)
	}

	var nilEng *Engine
	if nilEng.Config() != nil {
		t.Fatal("Nil engine must report nil config")
	}
	if err := nilEng.Close(ctx); err != nil {
		t.Fatal("Closing nil must be a no-op")
	}
}

func TestEngineConsumesConfig(t *testing.T) {
	ctx := context.Background()
	cfg := NewConfig()
	cfg.MemoryLimitPages = 16
	cfg.CloseOnContextDone = true

	eng := NewEngineWithConfig(ctx, cfg)
	defer eng.Close(ctx)

	if cfg.MemoryLimitPages != 0 || cfg.CloseOnContextDone {
		t.Fatal("Configuration source not reset after construction")
	}
	snap := eng.Config()
	if snap.MemoryLimitPages != 16 || !snap.CloseOnContextDone {
		t.Fatal("Engine snapshot mismatch")
	}
}

func TestStoreAgainstNilEngine(t *testing.T) {
	if NewStore(nil) != nil {
		t.Fatal("Store against nil engine must be nil")
	}

	var s *Store
	if s.Engine() != nil {
		t.Fatal("Nil store must report nil engine")
	}
	if _, err := s.Load(context.Background(), addModule); err == nil {
		t.Fatal("Load on nil store must fail")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal("Closing nil store must be a no-op")
	}
}

func TestStoreLoadExports(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	defer eng.Close(ctx)

	store := NewStore(eng)
	defer store.Close(ctx)
	if store.Engine() != eng {
		t.Fatal("Store must report its engine")
	}

	mod, err := store.Load(ctx, addModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	exports := mod.Exports()
	defer exports.Delete()
	if exports.Size() != 1 {
		t.Fatalf("Expected 1 export, got %d", exports.Size())
	}

	exp := exports.Data()[0]
	if exp.Name().String() != "add" {
		t.Fatalf("Expected export add, got %q", exp.Name().String())
	}
	ft := exp.Type().AsFuncType()
	if ft == nil {
		t.Fatal("Expected a function export")
	}
	params := ft.Params().Data()
	if len(params) != 2 || params[0].Kind() != types.KindI32 || params[1].Kind() != types.KindI32 {
		t.Fatal("Parameter types mismatch")
	}
	results := ft.Results().Data()
	if len(results) != 1 || results[0].Kind() != types.KindI32 {
		t.Fatal("Result types mismatch")
	}

	imports := mod.Imports()
	defer imports.Delete()
	if imports.Size() != 0 {
		t.Fatalf("Expected no imports, got %d", imports.Size())
	}
}

func TestStoreLoadImports(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	defer eng.Close(ctx)

	store := NewStore(eng)
	defer store.Close(ctx)

	mod, err := store.Load(ctx, importModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	imports := mod.Imports()
	defer imports.Delete()
	if imports.Size() != 2 {
		t.Fatalf("Expected 2 imports, got %d", imports.Size())
	}

	fn := imports.Data()[0]
	if fn.Module().String() != "env" || fn.Name().String() != "log" {
		t.Fatalf("Function import mismatch: %s.%s", fn.Module().String(), fn.Name().String())
	}
	ft := fn.Type().AsFuncType()
	if ft == nil || ft.Params().Size() != 0 || ft.Results().Size() != 0 {
		t.Fatal("Expected a nullary function import")
	}

	mem := imports.Data()[1]
	if mem.Module().String() != "env" || mem.Name().String() != "mem" {
		t.Fatalf("Memory import mismatch: %s.%s", mem.Module().String(), mem.Name().String())
	}
	mt := mem.Type().AsMemoryType()
	if mt == nil {
		t.Fatal("Expected a memory import")
	}
	if mt.Limits().Min != 1 || mt.Limits().Max != types.LimitsMaxDefault {
		t.Fatalf("Limits mismatch: %+v", mt.Limits())
	}
}

func TestStoreLoadErrors(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	defer eng.Close(ctx)

	store := NewStore(eng)
	if _, err := store.Load(ctx, nil); err == nil {
		t.Fatal("Loading an empty binary must fail")
	}
	if _, err := store.Load(ctx, []byte{0x00, 0x61, 0x73}); err == nil {
		t.Fatal("Loading a malformed binary must fail")
	}

	if err := store.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := store.Load(ctx, addModule); err == nil {
		t.Fatal("Loading through a closed store must fail")
	}
	if err := store.Close(ctx); err != nil {
		t.Fatal("Repeated close must be a no-op")
	}
}

func TestStoreLoadAfterEngineClose(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	store := NewStore(eng)
	defer store.Close(ctx)

	if err := eng.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := store.Load(ctx, addModule); err == nil {
		t.Fatal("Loading against a closed engine must fail")
	}
}

func TestModuleClose(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine(ctx)
	defer eng.Close(ctx)
	store := NewStore(eng)
	defer store.Close(ctx)

	mod, err := store.Load(ctx, addModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := mod.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := mod.Close(ctx); err != nil {
		t.Fatal("Repeated close must be a no-op")
	}

	// Queries against a closed module degrade to empties.
	if mod.Name() != "" {
		t.Fatal("Closed module must report an empty name")
	}
	exports := mod.Exports()
	if exports.Size() != 0 {
		t.Fatal("Closed module must report no exports")
	}
	imports := mod.Imports()
	if imports.Size() != 0 {
		t.Fatal("Closed module must report no imports")
	}

	var nilMod *Module
	nilImports := nilMod.Imports()
	nilExports := nilMod.Exports()
	if nilMod.Name() != "" || nilImports.Size() != 0 || nilExports.Size() != 0 {
		t.Fatal("Nil module queries must report empties")
	}
	if err := nilMod.Close(ctx); err != nil {
		t.Fatal("Closing nil must be a no-op")
	}
}
