package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEncodeErrorUnwraps(t *testing.T) {
	cause := errors.New("bad payload")
	err := fmt.Errorf("sending: %w", &EncodeError{Err: cause})

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatal("errors.As failed to find EncodeError")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to reach the cause")
	}
}

func TestUnknownTagErrorsCarryTag(t *testing.T) {
	opErr := &UnknownOperationError{Type: "teleport"}
	if !strings.Contains(opErr.Error(), "teleport") {
		t.Errorf("Error() = %q, want the tag included", opErr.Error())
	}
	evErr := &UnknownEventError{Type: "singularity"}
	if !strings.Contains(evErr.Error(), "singularity") {
		t.Errorf("Error() = %q, want the tag included", evErr.Error())
	}
}

func TestVersionMismatchErrorMessage(t *testing.T) {
	err := &VersionMismatchError{Expected: "0.1.0", Actual: "0.2.0"}
	msg := err.Error()
	if !strings.Contains(msg, "0.1.0") || !strings.Contains(msg, "0.2.0") {
		t.Errorf("Error() = %q, want both versions", msg)
	}
}
