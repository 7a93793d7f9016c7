package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Load("compile module", stderrors.New("bad magic"))
	want := "[load] invalid_data: compile module (caused by: bad magic)"
	if err.Error() != want {
		t.Fatalf("Expected %q, got %q", want, err.Error())
	}

	bare := &Error{Phase: PhaseEngine, Kind: KindClosed}
	if bare.Error() != "[engine] closed" {
		t.Fatalf("Unexpected format: %q", bare.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("bad magic")
	err := Load("compile module", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("Expected cause in the chain")
	}
	if err.Unwrap() != cause {
		t.Fatal("Unwrap must return the cause")
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := Closed(PhaseStore, "store")
	if !Is(err, &Error{Phase: PhaseStore, Kind: KindClosed}) {
		t.Fatal("Expected phase and kind match")
	}
	if Is(err, &Error{Phase: PhaseEngine, Kind: KindClosed}) {
		t.Fatal("Different phase must not match")
	}
	if Is(err, &Error{Phase: PhaseStore, Kind: KindInvalidData}) {
		t.Fatal("Different kind must not match")
	}
	if Is(err, stderrors.New("store is closed")) {
		t.Fatal("Plain errors must not match")
	}
}

func TestConstructors(t *testing.T) {
	err := NotInitialized(PhaseLoad, "store")
	if err.Kind != KindNotInitialized || err.Detail != "store not initialized" {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = Closed(PhaseEngine, "engine")
	if err.Kind != KindClosed || err.Detail != "engine is closed" {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = InvalidInput(PhaseLoad, "empty module binary")
	if err.Kind != KindInvalidInput || err.Phase != PhaseLoad {
		t.Fatalf("Unexpected error: %v", err)
	}
}
