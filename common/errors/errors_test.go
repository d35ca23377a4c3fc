package errors

import (
	"testing"

	"github.com/pkg/errors"
)

func TestExitCodeOf(t *testing.T) {
	if c := ExitCodeOf(nil); c != 0 {
		t.Fatalf("Expected 0 for nil error, got %d", c)
	}
	if c := ExitCodeOf(errors.New("boom")); c != CollaboratorFailureExitCode {
		t.Fatalf("Expected collaborator failure code, got %d", c)
	}
	usage := NewError(errors.New("missing --org_id"), UsageExitCode)
	if c := ExitCodeOf(usage); c != UsageExitCode {
		t.Fatalf("Expected usage code, got %d", c)
	}
	if c := ExitCodeOf(errors.Wrap(usage, "parsing flags")); c != UsageExitCode {
		t.Fatalf("Expected usage code through a wrap, got %d", c)
	}
}

func TestNewErrorNil(t *testing.T) {
	if NewError(nil, UsageExitCode) != nil {
		t.Fatal("Expected nil ExitCodeError for nil error")
	}
	var e *ExitCodeError
	if e.GetExitCode() != 0 {
		t.Fatal("Expected 0 exit code from nil ExitCodeError")
	}
}
