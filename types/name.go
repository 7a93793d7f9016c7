package types

import "github.com/wasmbridge/wasmbridge/vec"

// Name is an owned byte buffer used for module and item names. It is the
// scalar byte vector of the container family with string helpers on top.
type Name struct {
	vec.Scalar[byte]
}

// NewName returns a name owning a copy of s. An empty string yields an
// empty name (size 0, nil data).
func NewName(s string) Name {
	var n Name
	if len(s) > 0 {
		n.Scalar = vec.NewScalar([]byte(s))
	}
	return n
}

// String returns the name's bytes as a string. A nil receiver reports "".
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return string(n.Data())
}

// TakeName moves the contents out of n, leaving it empty.
func (n *Name) TakeName() Name {
	var out Name
	if n != nil {
		out.Scalar = n.Take()
	}
	return out
}
