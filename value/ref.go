package value

import "reflect"

// Finalizer describes how the embedder would release the host info
// attached to a Ref. Recording one does not make the Ref invoke it; see
// the package documentation.
type Finalizer func(any)

// Ref is an opaque handle carrying embedder-attached data. The host info
// is owned by the embedder, never by the Ref.
type Ref struct {
	hostInfo  any
	finalizer Finalizer
}

// NewRef returns a reference carrying hostInfo and fin. The host info must
// be a comparable value (typically a pointer) for Same to be meaningful.
func NewRef(hostInfo any, fin Finalizer) *Ref {
	return &Ref{hostInfo: hostInfo, finalizer: fin}
}

// Copy returns a new Ref carrying the same host info and finalizer, or nil
// for a nil receiver. The copy is Same as the original.
func (r *Ref) Copy() *Ref {
	if r == nil {
		return nil
	}
	return &Ref{hostInfo: r.hostInfo, finalizer: r.finalizer}
}

// Delete releases the Ref itself and detaches its host info. The
// finalizer is NOT invoked: the host info's lifetime remains the
// embedder's responsibility. Repeated calls and nil receivers are safe
// no-ops.
func (r *Ref) Delete() {
	if r == nil {
		return
	}
	r.hostInfo = nil
	r.finalizer = nil
}

// Same reports whether r and other reference the same host object: both
// carry the identical host info and the identical finalizer. It is false
// whenever either side is nil.
func (r *Ref) Same(other *Ref) bool {
	if r == nil || other == nil {
		return false
	}
	return r.hostInfo == other.hostInfo && finalizerPC(r.finalizer) == finalizerPC(other.finalizer)
}

// finalizerPC identifies a finalizer by its code pointer; Go functions are
// not directly comparable.
func finalizerPC(f Finalizer) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}

// HostInfo returns the attached host info. A nil receiver reports nil.
func (r *Ref) HostInfo() any {
	if r == nil {
		return nil
	}
	return r.hostInfo
}

// SetHostInfo replaces the attached host info, keeping the current
// finalizer. A nil receiver is a no-op.
func (r *Ref) SetHostInfo(info any) {
	if r == nil {
		return
	}
	r.hostInfo = info
}

// SetHostInfoWithFinalizer replaces both the attached host info and the
// finalizer. A nil receiver is a no-op.
func (r *Ref) SetHostInfoWithFinalizer(info any, fin Finalizer) {
	if r == nil {
		return
	}
	r.hostInfo = info
	r.finalizer = fin
}
