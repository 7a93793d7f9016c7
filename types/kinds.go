package types

// ValKind identifies a WebAssembly value kind. The numeric encodings are
// part of the boundary wire contract and must not be renumbered.
type ValKind uint8

const (
	KindI32 ValKind = 0
	KindI64 ValKind = 1
	KindF32 ValKind = 2
	KindF64 ValKind = 3

	// Reference kinds occupy a separate range, leaving room for future
	// numeric kinds below them.
	KindAnyRef  ValKind = 128
	KindFuncRef ValKind = 129
)

// IsNum reports whether k is one of the four numeric kinds.
func (k ValKind) IsNum() bool {
	return k < KindAnyRef
}

// IsRef reports whether k is one of the two reference kinds.
func (k ValKind) IsRef() bool {
	return k == KindAnyRef || k == KindFuncRef
}

func (k ValKind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindAnyRef:
		return "anyref"
	case KindFuncRef:
		return "funcref"
	}
	return "unknown"
}

// Mutability states whether a global binding is read-only or assignable.
type Mutability uint8

const (
	Const Mutability = 0
	Var   Mutability = 1
)

func (m Mutability) String() string {
	if m == Var {
		return "var"
	}
	return "const"
}

// ExternKind is the discriminant of the ExternType hierarchy.
type ExternKind uint8

const (
	ExternFunc   ExternKind = 0
	ExternGlobal ExternKind = 1
	ExternTable  ExternKind = 2
	ExternMemory ExternKind = 3
)

var externKindNames = [...]string{
	ExternFunc:   "func",
	ExternGlobal: "global",
	ExternTable:  "table",
	ExternMemory: "memory",
}

func (k ExternKind) String() string {
	if int(k) < len(externKindNames) {
		return externKindNames[k]
	}
	return "unknown"
}

// LimitsMaxDefault marks an unbounded maximum in Limits.
const LimitsMaxDefault uint32 = 0xFFFFFFFF

// Limits is the inclusive {min,max} bound pair constraining table and
// memory sizes. It is a plain value type, copied by assignment.
type Limits struct {
	Min uint32
	Max uint32
}
