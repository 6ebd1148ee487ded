package domain

import (
	"fmt"
	"strings"
)

type ValidationMode string

const (
	ValidationModeLenient ValidationMode = "lenient"
	ValidationModeStrict  ValidationMode = "strict"
)

const DefaultValidationMode = ValidationModeLenient

func (mode ValidationMode) IsValid() bool {
	return mode == ValidationModeLenient || mode == ValidationModeStrict
}

// RaiseOnInvalid reports whether schema mismatches are returned as errors.
func (mode ValidationMode) RaiseOnInvalid() bool {
	return mode == ValidationModeStrict
}

func ParseValidationMode(value string) (ValidationMode, error) {
	parsed := ValidationMode(strings.ToLower(strings.TrimSpace(value)))
	if parsed == "" {
		return DefaultValidationMode, nil
	}
	if !parsed.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidValidationMode, value)
	}
	return parsed, nil
}

func ValidationModeFor(raiseOnInvalid bool) ValidationMode {
	if raiseOnInvalid {
		return ValidationModeStrict
	}
	return ValidationModeLenient
}
