package value

import (
	"math"

	"github.com/wasmbridge/wasmbridge/types"
)

// Value is a kind-tagged variant over the four numeric kinds and the two
// reference kinds. Numeric payloads are stored as plain bits; reference
// payloads own a Ref. The zero Value is an i32 zero.
//
// Values are flat data and move through scalar vectors
// (vec.Scalar[Value]); only Copy and Delete are kind-aware.
type Value struct {
	kind types.ValKind
	bits uint64
	ref  *Ref
}

// NewI32 returns an i32 value.
func NewI32(v int32) Value {
	return Value{kind: types.KindI32, bits: uint64(uint32(v))}
}

// NewI64 returns an i64 value.
func NewI64(v int64) Value {
	return Value{kind: types.KindI64, bits: uint64(v)}
}

// NewF32 returns an f32 value.
func NewF32(v float32) Value {
	return Value{kind: types.KindF32, bits: uint64(math.Float32bits(v))}
}

// NewF64 returns an f64 value.
func NewF64(v float64) Value {
	return Value{kind: types.KindF64, bits: math.Float64bits(v)}
}

// NewAnyRef returns an anyref value taking ownership of r.
func NewAnyRef(r *Ref) Value {
	return Value{kind: types.KindAnyRef, ref: r}
}

// NewFuncRef returns a funcref value taking ownership of r.
func NewFuncRef(r *Ref) Value {
	return Value{kind: types.KindFuncRef, ref: r}
}

// Kind returns the value's kind tag. A nil receiver reports KindI32.
func (v *Value) Kind() types.ValKind {
	if v == nil {
		return types.KindI32
	}
	return v.kind
}

// I32 returns the payload reinterpreted as an i32.
func (v *Value) I32() int32 {
	if v == nil {
		return 0
	}
	return int32(uint32(v.bits))
}

// I64 returns the payload reinterpreted as an i64.
func (v *Value) I64() int64 {
	if v == nil {
		return 0
	}
	return int64(v.bits)
}

// F32 returns the payload reinterpreted as an f32.
func (v *Value) F32() float32 {
	if v == nil {
		return 0
	}
	return math.Float32frombits(uint32(v.bits))
}

// F64 returns the payload reinterpreted as an f64.
func (v *Value) F64() float64 {
	if v == nil {
		return 0
	}
	return math.Float64frombits(v.bits)
}

// Ref returns the owned reference, borrowed from the value, or nil when
// the value does not hold a reference kind.
func (v *Value) Ref() *Ref {
	if v == nil || !v.kind.IsRef() {
		return nil
	}
	return v.ref
}

// Copy returns an independently owned duplicate. Reference kinds
// duplicate the Ref through its own copy protocol, so deleting the copy
// never invalidates the source; every other kind is copied as plain bits.
func (v *Value) Copy() Value {
	if v == nil {
		return Value{}
	}
	switch v.kind {
	case types.KindAnyRef, types.KindFuncRef:
		return Value{kind: v.kind, ref: v.ref.Copy()}
	default:
		return Value{kind: v.kind, bits: v.bits}
	}
}

// Delete releases the payload: reference kinds delegate to the Ref's
// delete, every other kind is zeroed, not freed. Repeated calls and nil
// receivers are safe no-ops.
func (v *Value) Delete() {
	if v == nil {
		return
	}
	switch v.kind {
	case types.KindAnyRef, types.KindFuncRef:
		v.ref.Delete()
		v.ref = nil
	default:
		v.bits = 0
	}
}
