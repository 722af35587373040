package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"unauthorized", ErrUnauthorized},
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"conflict", ErrConflict},
		{"validation", ErrValidation},
		{"invalid transition", ErrInvalidTransition},
		{"invalid credentials", ErrInvalidCredentials},
		{"internal", ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationErrorNamesField(t *testing.T) {
	err := NewValidation("items", "must not be empty")
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error to unwrap to sentinel, got %v", err)
	}

	var ve *ValidationError
	if !stdErrors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Field != "items" {
		t.Fatalf("expected field %q, got %q", "items", ve.Field)
	}
}

func TestTransitionErrorUnwraps(t *testing.T) {
	err := &TransitionError{From: "delivered", To: "processing"}
	if !stdErrors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected transition error to unwrap to sentinel, got %v", err)
	}
	if err.Error() == "" {
		t.Fatal("expected non-empty message")
	}
}
