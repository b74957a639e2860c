package apperrors

import (
	"errors"
	"testing"
)

func TestNewValidationErrorUnwraps(t *testing.T) {
	err := NewValidationError("unknown activity type \"concert\"")
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("validation errors should match ErrValidationFailed")
	}
	if err.Error() != "unknown activity type \"concert\"" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestNewCustomErrorUnwraps(t *testing.T) {
	err := NewCustomError(ErrActivityNotFound, "activity 9999 not found")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("custom errors should match their underlying sentinel")
	}
	if err.Error() != "activity 9999 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCustomErrorMessageFallback(t *testing.T) {
	err := NewCustomError(ErrMemberNotFound, "")
	if err.Error() != ErrMemberNotFound.Error() {
		t.Errorf("empty message should fall back to the sentinel text, got %q", err.Error())
	}
}

func TestCustomErrorWithDetails(t *testing.T) {
	err := NewCustomError(ErrMemberNotFound, "member 42 not found").
		WithDetails(map[string]interface{}{"id": 42})
	if err.Details["id"] != 42 {
		t.Errorf("details should carry the id, got %+v", err.Details)
	}
}

func TestIsMatchesAnyOf(t *testing.T) {
	err := NewCustomError(ErrUnknownSort, "unknown sort order \"oldest\"")
	if !Is(err, ErrUnknownPlatform, ErrUnknownSort, ErrUnknownChannel) {
		t.Errorf("Is should match any sentinel in the list")
	}
	if Is(err, ErrUnknownPlatform, ErrUnknownChannel) {
		t.Errorf("Is should not match unrelated sentinels")
	}
}
