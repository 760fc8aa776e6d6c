package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("TABLE_NOT_FOUND", "Table not found", http.StatusNotFound)
	if simple.Error() != "TABLE_NOT_FOUND: Table not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}
