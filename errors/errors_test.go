package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad count")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad count" {
		t.Errorf("expected message 'bad count', got %q", err.Message)
	}
}

func TestAppError_MissingCapability_Success(t *testing.T) {
	err := MissingCapability("reverse", "supports backward stepping")
	if err.Code != ErrCodeCapabilityMissing {
		t.Errorf("expected CAPABILITY_MISSING, got %s", err.Code)
	}
	if err.Details["adapter"] != "reverse" {
		t.Errorf("expected adapter=reverse, got %v", err.Details["adapter"])
	}
	if !strings.Contains(err.Message, "backward") {
		t.Errorf("expected message to mention capability, got %q", err.Message)
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "negative")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_Config_Cause(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3")
	err := Config("config.yml", cause)
	if err.Code != ErrCodeConfig {
		t.Errorf("expected CONFIG_ERROR, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find cause")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := Validation("bad").WithDetails(map[string]any{"a": 1})
	err.WithDetails(map[string]any{"b": 2})
	if len(err.Details) != 2 {
		t.Errorf("expected 2 details, got %d", len(err.Details))
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetail("k", "v")
	if err.Details["k"] != "v" {
		t.Errorf("expected k=v, got %v", err.Details["k"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Errorf("unexpected format: %q", err.Error())
	}
	err.WithCause(fmt.Errorf("disk"))
	if !strings.Contains(err.Error(), "(cause: disk)") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"MissingCapability", MissingCapability("values", "declares key and value types"), ErrCodeCapabilityMissing},
		{"InvalidInput", InvalidInput("count", "must be >= 0"), ErrCodeInvalidInput},
		{"Validation", Validation("bad"), ErrCodeInvalidInput},
		{"MissingField", MissingField("name"), ErrCodeMissingField},
		{"Config", Config("env", nil), ErrCodeConfig},
		{"Internal", Internal(nil), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected %s, got %s", tc.code, tc.err.Code)
			}
		})
	}
}

func TestAppError_AsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("compose: %w", MissingCapability("keys", "declares a key type"))
	if !IsAppError(wrapped) {
		t.Fatal("expected wrapped AppError to be detected")
	}
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeCapabilityMissing {
		t.Errorf("expected CAPABILITY_MISSING, got %v", appErr)
	}
	if !IsCode(wrapped, ErrCodeCapabilityMissing) {
		t.Error("expected IsCode to match")
	}
	if IsCode(fmt.Errorf("plain"), ErrCodeCapabilityMissing) {
		t.Error("plain error must not match")
	}
}
