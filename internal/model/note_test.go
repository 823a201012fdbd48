package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "Shopping", nil},
		{"empty", "", ErrEmptyTitle},
		{"whitespace only", "   ", ErrEmptyTitle},
		{"max length", strings.Repeat("a", MaxTitleLength), nil},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleTooLong},
		// Длина считается в символах, не в байтах
		{"multibyte at max length", strings.Repeat("я", MaxTitleLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if err := ValidateContent("milk"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !errors.Is(ValidateContent(""), ErrEmptyContent) {
		t.Error("Expected ErrEmptyContent for empty content")
	}
	if !errors.Is(ValidateContent(" \t"), ErrEmptyContent) {
		t.Error("Expected ErrEmptyContent for whitespace-only content")
	}
}

func TestValidationErrorsWrapErrValidation(t *testing.T) {
	for _, err := range []error{ErrEmptyTitle, ErrTitleTooLong, ErrEmptyContent} {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected %v to wrap ErrValidation", err)
		}
	}
}

func TestNotePatch(t *testing.T) {
	if !(NotePatch{}).IsZero() {
		t.Error("Expected empty patch to be zero")
	}

	title := "T"
	patch := NotePatch{Title: &title}
	if patch.IsZero() {
		t.Error("Expected patch with title to be non-zero")
	}
	if err := patch.Validate(); err != nil {
		t.Errorf("Expected valid patch, got: %v", err)
	}

	empty := ""
	if !errors.Is((NotePatch{Title: &empty}).Validate(), ErrEmptyTitle) {
		t.Error("Expected ErrEmptyTitle for explicitly empty title")
	}
	if !errors.Is((NotePatch{Content: &empty}).Validate(), ErrEmptyContent) {
		t.Error("Expected ErrEmptyContent for explicitly empty content")
	}

	// Пустой патч валиден: он лишь обновляет updated_at
	if err := (NotePatch{}).Validate(); err != nil {
		t.Errorf("Expected empty patch to be valid, got: %v", err)
	}
}
