package types

// ValType wraps a single value kind as a first-class type descriptor.
type ValType struct {
	kind ValKind
}

// NewValType returns a new value type descriptor for kind k.
func NewValType(k ValKind) *ValType {
	return &ValType{kind: k}
}

// Kind returns the wrapped value kind. A nil receiver reports KindI32.
func (t *ValType) Kind() ValKind {
	if t == nil {
		return KindI32
	}
	return t.kind
}

// Copy returns an independently owned duplicate, or nil for a nil receiver.
func (t *ValType) Copy() *ValType {
	if t == nil {
		return nil
	}
	return &ValType{kind: t.kind}
}

// Delete releases the descriptor. ValType owns nothing, so this is a no-op
// beyond honoring the ownership protocol; repeated calls are safe.
func (t *ValType) Delete() {}
