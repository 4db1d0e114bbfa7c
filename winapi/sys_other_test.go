//go:build !windows

package winapi

import (
	"errors"
	"testing"
)

func TestTranslateErrorCodeUnknownOffWindows(t *testing.T) {
	if got := TranslateErrorCode(Status(-0x7FFFBFFB)); got != unknownError {
		t.Errorf("TranslateErrorCode() = %q, want %q", got, unknownError)
	}
}

func TestShowAlertUnsupportedOffWindows(t *testing.T) {
	if err := ShowAlert("hello", SeverityInfo); !errors.Is(err, ErrAlertUnsupported) {
		t.Errorf("ShowAlert() = %v, want ErrAlertUnsupported", err)
	}
}
