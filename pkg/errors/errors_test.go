package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimension, "plot width must be > 0, got %g", -2.5)

	if err.Code != ErrCodeInvalidDimension {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidDimension)
	}
	want := "INVALID_DIMENSION: plot width must be > 0, got -2.5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRenderWrite, cause, "writing plan.png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unknown shape")

	if !Is(err, ErrCodeInvalidShape) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeRenderDraw) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidShape) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeRenderEncode, "png encode failed")
	outer := fmt.Errorf("render: %w", inner)

	if !Is(outer, ErrCodeRenderEncode) {
		t.Error("Is() should find the code through a fmt.Errorf wrap")
	}
}

func TestIsInput(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidDimension, true},
		{ErrCodeInvalidDirection, true},
		{ErrCodeInvalidShape, true},
		{ErrCodeInvalidRoomType, true},
		{ErrCodeInvalidFilename, true},
		{ErrCodeRenderDraw, false},
		{ErrCodeStoreWrite, false},
		{ErrCodeInternal, false},
	}
	for _, tt := range tests {
		if got := IsInput(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsInput(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDirection, "unknown direction: up")
	if got := UserMessage(err); got != "unknown direction: up" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateArtifactFilename(t *testing.T) {
	valid := []string{
		"0f8fad5b-d9cb-469f-a165-70867728950e.png",
		"plan.jpeg",
	}
	for _, name := range valid {
		if err := ValidateArtifactFilename(name); err != nil {
			t.Errorf("ValidateArtifactFilename(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"../etc/passwd",
		"a/b.png",
		"a\\b.png",
		".hidden.png",
		"bad\x00name.png",
	}
	for _, name := range invalid {
		if err := ValidateArtifactFilename(name); err == nil {
			t.Errorf("ValidateArtifactFilename(%q) = nil, want error", name)
		} else if !Is(err, ErrCodeInvalidFilename) {
			t.Errorf("ValidateArtifactFilename(%q) code = %s, want INVALID_FILENAME", name, GetCode(err))
		}
	}
}
