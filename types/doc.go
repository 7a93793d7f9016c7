// Package types defines the descriptor object model of the embedding
// boundary: value kinds, limits, value types, the extern-type hierarchy,
// and the import/export aggregates.
//
// # Closed enumerations
//
// ValKind, Mutability, and ExternKind are closed sets whose numeric
// encodings are part of the wire contract with any caller across the
// boundary; they must never be renumbered.
//
// # Extern types
//
// ExternType is a tag-discriminated union over four structural subtypes:
//
//	FuncType    - function signature (params, results)
//	GlobalType  - content type + mutability
//	TableType   - element type + limits
//	MemoryType  - limits
//
// The discriminant is stored in a base carried as the first field of every
// variant. Upcasts (AsExternType) and downcasts (AsFuncType, AsGlobalType,
// AsTableType, AsMemoryType) are identity-preserving and O(1) with no
// allocation; downcasts are kind-checked and return nil on mismatch.
// ExternType is never constructed directly.
//
// # Ownership
//
// Every descriptor follows the construct/copy/delete protocol: Copy is a
// deep, independently owned duplicate; Delete releases every owned child
// and is a safe no-op on nil or already-deleted receivers. Parameters
// documented as taken are moved into the new object and the caller's
// source is cleared. Accessors return borrowed references and tolerate nil
// receivers by returning a documented default.
package types
