package types

// MemoryType describes a linear memory by its size limits, in pages.
type MemoryType struct {
	ext    ExternType
	limits Limits
}

// NewMemoryType returns a memory type copying limits by value. A nil
// limits defaults to zero bounds.
func NewMemoryType(limits *Limits) *MemoryType {
	t := &MemoryType{}
	if limits != nil {
		t.limits = *limits
	}
	t.ext = newExternType(ExternMemory, t)
	return t
}

// Limits returns the size bounds, borrowed from the descriptor. A nil
// receiver reports nil.
func (t *MemoryType) Limits() *Limits {
	if t == nil {
		return nil
	}
	return &t.limits
}

// Copy returns an independently owned duplicate, or nil for a nil receiver.
func (t *MemoryType) Copy() *MemoryType {
	if t == nil {
		return nil
	}
	out := &MemoryType{limits: t.limits}
	out.ext = newExternType(ExternMemory, out)
	return out
}

// Delete releases the descriptor. Repeated calls and nil receivers are
// safe no-ops.
func (t *MemoryType) Delete() {}

// AsExternType upcasts to the discriminated base. The result is the
// identical object; downcasting it returns the original pointer.
func (t *MemoryType) AsExternType() *ExternType {
	if t == nil {
		return nil
	}
	return &t.ext
}
