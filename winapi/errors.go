package winapi

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a platform-native 32-bit status code, an HRESULT on Windows.
// Negative values denote failure.
type Status int32

// Failed reports whether s denotes failure.
func (s Status) Failed() bool { return s < 0 }

// Succeeded reports whether s denotes success.
func (s Status) Succeeded() bool { return s >= 0 }

// unknownError is returned when the platform has no message for a code.
const unknownError = "Unknown error"

// ErrorTranslator maps a status code to a human-readable message.
type ErrorTranslator interface {
	Translate(code Status) string
}

// TranslatorFunc adapts a function to ErrorTranslator.
type TranslatorFunc func(code Status) string

// Translate calls f(code).
func (f TranslatorFunc) Translate(code Status) string { return f(code) }

// SystemTranslator returns the platform's translator.
func SystemTranslator() ErrorTranslator { return systemTranslator{} }

// TranslateErrorCode returns the system message for code, or
// "Unknown error" when the platform cannot produce one.
func TranslateErrorCode(code Status) string {
	return systemTranslator{}.Translate(code)
}

// StatusError is returned by Check for a failed status code.
// Its message is formatted each time Error is called, so errors that are
// only propagated never pay for translation.
type StatusError struct {
	Code Status

	translator ErrorTranslator
}

// Message returns the translated message for e.Code.
func (e *StatusError) Message() string {
	tr := e.translator
	if tr == nil {
		tr = systemTranslator{}
	}
	msg := strings.TrimSpace(tr.Translate(e.Code))
	if msg == "" {
		return unknownError
	}
	return msg
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failure with HRESULT of %08X: %s", uint32(e.Code), e.Message())
}

// Is reports whether target is a *StatusError with the same code.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Code == e.Code
}

// Check returns a *StatusError if code denotes failure and nil otherwise.
func Check(code Status) error {
	return CheckWith(code, nil)
}

// CheckWith is like Check but translates messages with tr.
// A nil tr uses the system translator.
func CheckWith(code Status, tr ErrorTranslator) error {
	if code.Succeeded() {
		return nil
	}
	return &StatusError{Code: code, translator: tr}
}

// CodeOf extracts the status code from err.
func CodeOf(err error) (Status, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
