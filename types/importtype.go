package types

// ImportType describes one item a module requires from its embedder: the
// providing module's name, the item's name, and the item's extern type.
// All three are owned by the aggregate.
type ImportType struct {
	module Name
	name   Name
	typ    *ExternType
}

// NewImportType returns an import descriptor taking ownership of both name
// buffers and the extern type. The name sources are left empty; nil names
// are treated as empty and a nil type is carried as-is.
func NewImportType(module, name *Name, typ *ExternType) *ImportType {
	return &ImportType{
		module: module.TakeName(),
		name:   name.TakeName(),
		typ:    typ,
	}
}

// Module returns the providing module's name, borrowed from the
// descriptor. A nil receiver reports nil.
func (t *ImportType) Module() *Name {
	if t == nil {
		return nil
	}
	return &t.module
}

// Name returns the item's name, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *ImportType) Name() *Name {
	if t == nil {
		return nil
	}
	return &t.name
}

// Type returns the item's extern type, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *ImportType) Type() *ExternType {
	if t == nil {
		return nil
	}
	return t.typ
}

// Copy returns an independently owned deep duplicate, or nil for a nil
// receiver.
func (t *ImportType) Copy() *ImportType {
	if t == nil {
		return nil
	}
	out := &ImportType{typ: t.typ.Copy()}
	out.module.CopyFrom(&t.module.Scalar)
	out.name.CopyFrom(&t.name.Scalar)
	return out
}

// Delete releases the name buffers and the owned extern type, recursively.
// Repeated calls and nil receivers are safe no-ops.
func (t *ImportType) Delete() {
	if t == nil {
		return
	}
	t.module.Delete()
	t.name.Delete()
	t.typ.Delete()
	t.typ = nil
}
