package types

// TableType describes a table: its element value type and size limits.
type TableType struct {
	ext    ExternType
	elem   ValType
	limits Limits
}

// NewTableType returns a table type taking ownership of elem and copying
// limits by value. The element descriptor is consumed; nil defaults to
// KindI32 for the element and zero bounds for the limits.
func NewTableType(elem *ValType, limits *Limits) *TableType {
	t := &TableType{elem: ValType{kind: elem.Kind()}}
	if limits != nil {
		t.limits = *limits
	}
	t.ext = newExternType(ExternTable, t)
	elem.Delete()
	return t
}

// Element returns the element value type, borrowed from the descriptor.
// A nil receiver reports nil.
func (t *TableType) Element() *ValType {
	if t == nil {
		return nil
	}
	return &t.elem
}

// Limits returns the size bounds, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *TableType) Limits() *Limits {
	if t == nil {
		return nil
	}
	return &t.limits
}

// Copy returns an independently owned duplicate, or nil for a nil receiver.
func (t *TableType) Copy() *TableType {
	if t == nil {
		return nil
	}
	out := &TableType{elem: t.elem, limits: t.limits}
	out.ext = newExternType(ExternTable, out)
	return out
}

// Delete releases the descriptor. Repeated calls and nil receivers are
// safe no-ops.
func (t *TableType) Delete() {}

// AsExternType upcasts to the discriminated base. The result is the
// identical object; downcasting it returns the original pointer.
func (t *TableType) AsExternType() *ExternType {
	if t == nil {
		return nil
	}
	return &t.ext
}
