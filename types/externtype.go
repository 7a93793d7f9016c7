package types

// ExternType is the discriminated base of the four extern-type variants.
// It is never instantiated directly: values are obtained from a variant's
// AsExternType and remain the identical object. The discriminant set is
// closed; a value outside it reaching Copy or Delete is a programmer error
// and panics.
type ExternType struct {
	kind ExternKind
	self any
}

func newExternType(kind ExternKind, self any) ExternType {
	return ExternType{kind: kind, self: self}
}

// Kind returns the discriminant. A nil receiver reports ExternFunc.
func (t *ExternType) Kind() ExternKind {
	if t == nil {
		return ExternFunc
	}
	return t.kind
}

// AsFuncType downcasts to the function variant. It returns nil if the
// receiver is nil or holds a different variant.
func (t *ExternType) AsFuncType() *FuncType {
	if t == nil || t.kind != ExternFunc {
		return nil
	}
	ft, _ := t.self.(*FuncType)
	return ft
}

// AsGlobalType downcasts to the global variant. It returns nil if the
// receiver is nil or holds a different variant.
func (t *ExternType) AsGlobalType() *GlobalType {
	if t == nil || t.kind != ExternGlobal {
		return nil
	}
	gt, _ := t.self.(*GlobalType)
	return gt
}

// AsTableType downcasts to the table variant. It returns nil if the
// receiver is nil or holds a different variant.
func (t *ExternType) AsTableType() *TableType {
	if t == nil || t.kind != ExternTable {
		return nil
	}
	tt, _ := t.self.(*TableType)
	return tt
}

// AsMemoryType downcasts to the memory variant. It returns nil if the
// receiver is nil or holds a different variant.
func (t *ExternType) AsMemoryType() *MemoryType {
	if t == nil || t.kind != ExternMemory {
		return nil
	}
	mt, _ := t.self.(*MemoryType)
	return mt
}

// Copy returns an independently owned deep duplicate of the underlying
// variant, upcast to ExternType. Copying nil yields nil.
func (t *ExternType) Copy() *ExternType {
	if t == nil {
		return nil
	}
	switch t.kind {
	case ExternFunc:
		return t.AsFuncType().Copy().AsExternType()
	case ExternGlobal:
		return t.AsGlobalType().Copy().AsExternType()
	case ExternTable:
		return t.AsTableType().Copy().AsExternType()
	case ExternMemory:
		return t.AsMemoryType().Copy().AsExternType()
	}
	panic("types: invalid extern kind " + t.kind.String())
}

// Delete releases the underlying variant and everything it owns. Deleting
// nil or an already-deleted value is a no-op.
func (t *ExternType) Delete() {
	if t == nil {
		return
	}
	switch t.kind {
	case ExternFunc:
		t.AsFuncType().Delete()
	case ExternGlobal:
		t.AsGlobalType().Delete()
	case ExternTable:
		t.AsTableType().Delete()
	case ExternMemory:
		t.AsMemoryType().Delete()
	default:
		panic("types: invalid extern kind " + t.kind.String())
	}
}
