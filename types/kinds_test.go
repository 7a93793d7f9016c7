package types

import "testing"

func TestValKindEncodings(t *testing.T) {
	// Wire contract: the numeric encodings are frozen.
	cases := []struct {
		kind ValKind
		code uint8
		name string
	}{
		{KindI32, 0, "i32"},
		{KindI64, 1, "i64"},
		{KindF32, 2, "f32"},
		{KindF64, 3, "f64"},
		{KindAnyRef, 128, "anyref"},
		{KindFuncRef, 129, "funcref"},
	}
	for _, tc := range cases {
		if uint8(tc.kind) != tc.code {
			t.Fatalf("%s: expected encoding %d, got %d", tc.name, tc.code, uint8(tc.kind))
		}
		if tc.kind.String() != tc.name {
			t.Fatalf("Expected name %q, got %q", tc.name, tc.kind.String())
		}
	}
	if ValKind(42).String() != "unknown" {
		t.Fatal("Out-of-set kind must stringify as unknown")
	}
}

func TestValKindClassification(t *testing.T) {
	for _, k := range []ValKind{KindI32, KindI64, KindF32, KindF64} {
		if !k.IsNum() || k.IsRef() {
			t.Fatalf("%s must classify as numeric", k)
		}
	}
	for _, k := range []ValKind{KindAnyRef, KindFuncRef} {
		if k.IsNum() || !k.IsRef() {
			t.Fatalf("%s must classify as reference", k)
		}
	}
}

func TestMutabilityEncodings(t *testing.T) {
	if uint8(Const) != 0 || uint8(Var) != 1 {
		t.Fatal("Mutability encodings are frozen")
	}
	if Const.String() != "const" || Var.String() != "var" {
		t.Fatal("Mutability name mismatch")
	}
}

func TestExternKindEncodings(t *testing.T) {
	cases := []struct {
		kind ExternKind
		code uint8
		name string
	}{
		{ExternFunc, 0, "func"},
		{ExternGlobal, 1, "global"},
		{ExternTable, 2, "table"},
		{ExternMemory, 3, "memory"},
	}
	for _, tc := range cases {
		if uint8(tc.kind) != tc.code {
			t.Fatalf("%s: expected encoding %d, got %d", tc.name, tc.code, uint8(tc.kind))
		}
		if tc.kind.String() != tc.name {
			t.Fatalf("Expected name %q, got %q", tc.name, tc.kind.String())
		}
	}
	if ExternKind(9).String() != "unknown" {
		t.Fatal("Out-of-set kind must stringify as unknown")
	}
}
