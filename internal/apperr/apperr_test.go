package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindHTTPStatusAndMessage(t *testing.T) {
	tests := []struct {
		kind       Kind
		wantStatus int
		wantMsg    string
	}{
		{BadRequest, http.StatusBadRequest, "bad request"},
		{NotFound, http.StatusNotFound, "resource not found"},
		{Unprocessable, http.StatusUnprocessableEntity, "unprocessable"},
		{Internal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.HTTPStatus(); got != tt.wantStatus {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
			if got := tt.kind.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, NotFound, "op"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, Unprocessable, "list categories")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got := KindOf(err); got != Unprocessable {
		t.Errorf("KindOf() = %v, want %v", got, Unprocessable)
	}
	if got := err.Error(); got != "list categories: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(NotFound, "find question"))

	if !Is(err, NotFound) {
		t.Errorf("Is(err, NotFound) = false, kind %v", KindOf(err))
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != Internal {
		t.Errorf("KindOf(plain) = %v, want Internal", got)
	}
	if Is(nil, Internal) {
		t.Error("Is(nil, Internal) = true, want false")
	}
}
