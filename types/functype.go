package types

import "github.com/wasmbridge/wasmbridge/vec"

// FuncType describes a function signature: a vector of parameter types and
// a vector of result types, both owned by the descriptor.
type FuncType struct {
	ext     ExternType
	params  vec.Ptr[*ValType]
	results vec.Ptr[*ValType]
}

// NewFuncType returns a function type taking ownership of both vectors.
// The sources are left empty; nil vectors are treated as empty.
func NewFuncType(params, results *vec.Ptr[*ValType]) *FuncType {
	t := &FuncType{}
	t.ext = newExternType(ExternFunc, t)
	if params != nil {
		t.params = params.Take()
	}
	if results != nil {
		t.results = results.Take()
	}
	return t
}

// Params returns the parameter type vector, borrowed from the descriptor.
// A nil receiver reports nil.
func (t *FuncType) Params() *vec.Ptr[*ValType] {
	if t == nil {
		return nil
	}
	return &t.params
}

// Results returns the result type vector, borrowed from the descriptor.
// A nil receiver reports nil.
func (t *FuncType) Results() *vec.Ptr[*ValType] {
	if t == nil {
		return nil
	}
	return &t.results
}

// Copy returns an independently owned deep duplicate, or nil for a nil
// receiver.
func (t *FuncType) Copy() *FuncType {
	if t == nil {
		return nil
	}
	out := &FuncType{}
	out.ext = newExternType(ExternFunc, out)
	out.params.CopyFrom(&t.params)
	out.results.CopyFrom(&t.results)
	return out
}

// Delete releases both owned vectors and their elements. Repeated calls
// and nil receivers are safe no-ops.
func (t *FuncType) Delete() {
	if t == nil {
		return
	}
	t.params.Delete()
	t.results.Delete()
}

// AsExternType upcasts to the discriminated base. The result is the
// identical object; downcasting it returns the original pointer.
func (t *FuncType) AsExternType() *ExternType {
	if t == nil {
		return nil
	}
	return &t.ext
}
