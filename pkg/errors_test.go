package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := e.Error(); got != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string %q", got)
	}
	if got := e.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", got)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Err != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if got := simple.Error(); got != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected error string %q", got)
	}
}
