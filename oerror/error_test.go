package oerror

import (
	"errors"
	"io"
	"testing"
)

func TestNewKeepsCause(t *testing.T) {
	err := New("reading scene: %w", io.ErrUnexpectedEOF)
	if err.Error() != "reading scene: unexpected EOF" {
		t.Fatalf("expected formatted message, got %q", err.Error())
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected error to wrap io.ErrUnexpectedEOF")
	}
}

func TestNewWithoutCause(t *testing.T) {
	err := New("point %q has no neighbours", "a")
	if errors.Unwrap(err) != nil {
		t.Fatalf("expected no cause, got %v", errors.Unwrap(err))
	}
}
