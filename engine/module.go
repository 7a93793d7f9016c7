package engine

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wasmbridge/wasmbridge/types"
	"github.com/wasmbridge/wasmbridge/vec"
)

// Module is a compiled, validated module held by a Store. It exposes the
// module's boundary as import and export descriptors.
type Module struct {
	compiled wazero.CompiledModule
}

// Name returns the module's name from its name section, or "" when absent
// or for a nil or closed receiver.
func (m *Module) Name() string {
	if m == nil || m.compiled == nil {
		return ""
	}
	return m.compiled.Name()
}

// Imports returns the module's import descriptors as an owned vector. The
// caller is responsible for deleting it. Functions and memories are
// listed; the runtime does not expose table and global imports. A nil or
// closed receiver reports an empty vector.
func (m *Module) Imports() vec.Ptr[*types.ImportType] {
	if m == nil || m.compiled == nil {
		return vec.NewPtrEmpty[*types.ImportType]()
	}

	var items []*types.ImportType
	for _, fn := range m.compiled.ImportedFunctions() {
		modName, name, _ := fn.Import()
		items = append(items, newImportItem(modName, name, funcTypeOf(fn).AsExternType()))
	}
	for _, mem := range m.compiled.ImportedMemories() {
		modName, name, _ := mem.Import()
		items = append(items, newImportItem(modName, name, memoryTypeOf(mem).AsExternType()))
	}
	return vec.NewPtr(items)
}

// Exports returns the module's export descriptors as an owned vector,
// sorted by name. The caller is responsible for deleting it. A nil or
// closed receiver reports an empty vector.
func (m *Module) Exports() vec.Ptr[*types.ExportType] {
	if m == nil || m.compiled == nil {
		return vec.NewPtrEmpty[*types.ExportType]()
	}

	var items []*types.ExportType
	funcs := m.compiled.ExportedFunctions()
	for _, name := range sortedKeys(funcs) {
		items = append(items, newExportItem(name, funcTypeOf(funcs[name]).AsExternType()))
	}
	mems := m.compiled.ExportedMemories()
	for _, name := range sortedKeys(mems) {
		items = append(items, newExportItem(name, memoryTypeOf(mems[name]).AsExternType()))
	}
	return vec.NewPtr(items)
}

// Close releases the compiled module. Repeated calls and nil receivers
// are safe no-ops.
func (m *Module) Close(ctx context.Context) error {
	if m == nil || m.compiled == nil {
		return nil
	}
	compiled := m.compiled
	m.compiled = nil
	return compiled.Close(ctx)
}

func newImportItem(module, name string, typ *types.ExternType) *types.ImportType {
	mod := types.NewName(module)
	item := types.NewName(name)
	return types.NewImportType(&mod, &item, typ)
}

func newExportItem(name string, typ *types.ExternType) *types.ExportType {
	item := types.NewName(name)
	return types.NewExportType(&item, typ)
}

func funcTypeOf(def api.FunctionDefinition) *types.FuncType {
	params := valTypeVec(def.ParamTypes())
	results := valTypeVec(def.ResultTypes())
	return types.NewFuncType(&params, &results)
}

func memoryTypeOf(def api.MemoryDefinition) *types.MemoryType {
	lim := types.Limits{Min: def.Min(), Max: types.LimitsMaxDefault}
	if max, ok := def.Max(); ok {
		lim.Max = max
	}
	return types.NewMemoryType(&lim)
}

func valTypeVec(ts []api.ValueType) vec.Ptr[*types.ValType] {
	if len(ts) == 0 {
		return vec.NewPtrEmpty[*types.ValType]()
	}
	elems := make([]*types.ValType, len(ts))
	for i, t := range ts {
		elems[i] = types.NewValType(valKindOf(t))
	}
	return vec.NewPtr(elems)
}

// valueTypeFuncref is the funcref value type (0x70 per the WebAssembly
// binary format); wazero's api package does not export it.
const valueTypeFuncref api.ValueType = 0x70

// valKindOf maps a runtime value type onto the boundary's closed kind
// set. Types outside the set (v128) surface as anyref.
func valKindOf(t api.ValueType) types.ValKind {
	switch t {
	case api.ValueTypeI32:
		return types.KindI32
	case api.ValueTypeI64:
		return types.KindI64
	case api.ValueTypeF32:
		return types.KindF32
	case api.ValueTypeF64:
		return types.KindF64
	case valueTypeFuncref:
		return types.KindFuncRef
	default:
		return types.KindAnyRef
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
