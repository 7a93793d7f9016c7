package vec

// Elem is implemented by element types stored in pointer vectors. T is the
// element pointer type itself; both methods must tolerate nil receivers.
type Elem[T any] interface {
	Copy() T
	Delete()
}

// Scalar is a fixed-length owned sequence of flat value elements.
// The zero value is an empty vector.
type Scalar[T any] struct {
	data []T
}

// NewScalarEmpty returns an empty vector (size 0, nil data).
func NewScalarEmpty[T any]() Scalar[T] {
	return Scalar[T]{}
}

// NewScalarUninitialized returns a vector of n zero-valued slots. The caller
// is responsible for populating every slot before reading it. For n == 0 the
// data stays nil.
func NewScalarUninitialized[T any](n uint) Scalar[T] {
	if n == 0 {
		return Scalar[T]{}
	}
	return Scalar[T]{data: make([]T, n)}
}

// NewScalar returns a vector holding a flat copy of elems. Scalar elements
// carry no independent ownership, so the source remains usable.
func NewScalar[T any](elems []T) Scalar[T] {
	if len(elems) == 0 {
		return Scalar[T]{}
	}
	data := make([]T, len(elems))
	copy(data, elems)
	return Scalar[T]{data: data}
}

// Size returns the number of elements. A nil vector has size 0.
func (v *Scalar[T]) Size() uint {
	if v == nil {
		return 0
	}
	return uint(len(v.data))
}

// Data returns the backing buffer, borrowed from the vector. It is nil
// whenever the vector is empty.
func (v *Scalar[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.data
}

// CopyFrom replaces the contents of v with a flat element-wise copy of src.
// Previous contents are released first. Copying from or into a nil vector is
// a no-op.
func (v *Scalar[T]) CopyFrom(src *Scalar[T]) {
	if v == nil || src == nil {
		return
	}
	v.Delete()
	if len(src.data) == 0 {
		return
	}
	v.data = make([]T, len(src.data))
	copy(v.data, src.data)
}

// Take moves the contents out of v, leaving it empty. The returned vector is
// the new sole owner of the buffer.
func (v *Scalar[T]) Take() Scalar[T] {
	if v == nil {
		return Scalar[T]{}
	}
	out := Scalar[T]{data: v.data}
	v.data = nil
	return out
}

// Delete frees the backing buffer and resets the vector to the empty state.
// Deleting a nil or already-deleted vector is a no-op.
func (v *Scalar[T]) Delete() {
	if v == nil {
		return
	}
	v.data = nil
}

// Ptr is a fixed-length owned sequence whose elements are independently
// owned pointers. The zero value is an empty vector.
type Ptr[T Elem[T]] struct {
	data []T
}

// NewPtrEmpty returns an empty vector (size 0, nil data).
func NewPtrEmpty[T Elem[T]]() Ptr[T] {
	return Ptr[T]{}
}

// NewPtrUninitialized returns a vector of n nil slots. The caller is
// responsible for populating every slot before the vector is read or
// deleted with live elements expected. For n == 0 the data stays nil.
func NewPtrUninitialized[T Elem[T]](n uint) Ptr[T] {
	if n == 0 {
		return Ptr[T]{}
	}
	return Ptr[T]{data: make([]T, n)}
}

// NewPtr returns a vector taking ownership of every element in elems. The
// source slots are cleared so the transfer is observable and the caller
// cannot double-delete the elements.
func NewPtr[T Elem[T]](elems []T) Ptr[T] {
	if len(elems) == 0 {
		return Ptr[T]{}
	}
	data := make([]T, len(elems))
	copy(data, elems)
	var zero T
	for i := range elems {
		elems[i] = zero
	}
	return Ptr[T]{data: data}
}

// Size returns the number of elements. A nil vector has size 0.
func (v *Ptr[T]) Size() uint {
	if v == nil {
		return 0
	}
	return uint(len(v.data))
}

// Data returns the backing buffer, borrowed from the vector. The elements
// remain owned by the vector. Data is nil whenever the vector is empty.
func (v *Ptr[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.data
}

// CopyFrom replaces the contents of v with an independently owned deep copy
// of src: each element is duplicated via its own Copy. Previous contents are
// released first. Copying from or into a nil vector is a no-op.
func (v *Ptr[T]) CopyFrom(src *Ptr[T]) {
	if v == nil || src == nil {
		return
	}
	v.Delete()
	if len(src.data) == 0 {
		return
	}
	v.data = make([]T, len(src.data))
	for i, e := range src.data {
		v.data[i] = e.Copy()
	}
}

// Take moves the contents out of v, leaving it empty. The returned vector is
// the new sole owner of the buffer and its elements.
func (v *Ptr[T]) Take() Ptr[T] {
	if v == nil {
		return Ptr[T]{}
	}
	out := Ptr[T]{data: v.data}
	v.data = nil
	return out
}

// Delete destroys every element, frees the backing buffer, and resets the
// vector to the empty state. Deleting a nil or already-deleted vector is a
// no-op.
func (v *Ptr[T]) Delete() {
	if v == nil {
		return
	}
	var zero T
	for i := range v.data {
		v.data[i].Delete()
		v.data[i] = zero
	}
	v.data = nil
}
