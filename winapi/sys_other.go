//go:build !windows

package winapi

import "github.com/gogpu/kit"

type systemTranslator struct{}

// Translate reports "Unknown error": HRESULT codes have no system text here.
func (systemTranslator) Translate(Status) string { return unknownError }

type systemPresenter struct{}

func (systemPresenter) Present(message, caption string, severity Severity, _ WindowHandle) error {
	kit.Logger().Warn("winapi: alert dialog unavailable",
		"caption", caption, "severity", severity.String(), "message", message)
	return ErrAlertUnsupported
}
