package types

// GlobalType describes a global binding: its content value type and
// whether the binding is assignable.
type GlobalType struct {
	ext     ExternType
	content ValType
	mut     Mutability
}

// NewGlobalType returns a global type taking ownership of content. The
// content descriptor is consumed; a nil content defaults to KindI32.
func NewGlobalType(content *ValType, mut Mutability) *GlobalType {
	t := &GlobalType{content: ValType{kind: content.Kind()}, mut: mut}
	t.ext = newExternType(ExternGlobal, t)
	content.Delete()
	return t
}

// Content returns the content value type, borrowed from the descriptor.
// A nil receiver reports nil.
func (t *GlobalType) Content() *ValType {
	if t == nil {
		return nil
	}
	return &t.content
}

// Mutability returns the binding mutability. A nil receiver reports Const.
func (t *GlobalType) Mutability() Mutability {
	if t == nil {
		return Const
	}
	return t.mut
}

// Copy returns an independently owned duplicate, or nil for a nil receiver.
func (t *GlobalType) Copy() *GlobalType {
	if t == nil {
		return nil
	}
	out := &GlobalType{content: t.content, mut: t.mut}
	out.ext = newExternType(ExternGlobal, out)
	return out
}

// Delete releases the descriptor. Repeated calls and nil receivers are
// safe no-ops.
func (t *GlobalType) Delete() {}

// AsExternType upcasts to the discriminated base. The result is the
// identical object; downcasting it returns the original pointer.
func (t *GlobalType) AsExternType() *ExternType {
	if t == nil {
		return nil
	}
	return &t.ext
}
