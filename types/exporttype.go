package types

// ExportType describes one item a module offers to its embedder: the
// item's name and extern type, both owned by the aggregate.
type ExportType struct {
	name Name
	typ  *ExternType
}

// NewExportType returns an export descriptor taking ownership of the name
// buffer and the extern type. The name source is left empty; a nil name is
// treated as empty and a nil type is carried as-is.
func NewExportType(name *Name, typ *ExternType) *ExportType {
	return &ExportType{
		name: name.TakeName(),
		typ:  typ,
	}
}

// Name returns the item's name, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *ExportType) Name() *Name {
	if t == nil {
		return nil
	}
	return &t.name
}

// Type returns the item's extern type, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *ExportType) Type() *ExternType {
	if t == nil {
		return nil
	}
	return t.typ
}

// Copy returns an independently owned deep duplicate, or nil for a nil
// receiver.
func (t *ExportType) Copy() *ExportType {
	if t == nil {
		return nil
	}
	out := &ExportType{typ: t.typ.Copy()}
	out.name.CopyFrom(&t.name.Scalar)
	return out
}

// Delete releases the name buffer and the owned extern type, recursively.
// Repeated calls and nil receivers are safe no-ops.
func (t *ExportType) Delete() {
	if t == nil {
		return
	}
	t.name.Delete()
	t.typ.Delete()
	t.typ = nil
}
