//go:build windows

package winapi

import (
	"strings"

	"golang.org/x/sys/windows"

	"github.com/gogpu/kit"
)

// langNeutralDefault is MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT).
const langNeutralDefault = 0x0400

type systemTranslator struct{}

// Translate asks FormatMessage for the system text of code.
func (systemTranslator) Translate(code Status) string {
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, uint32(code), langNeutralDefault, buf, nil)
	if err != nil || n == 0 {
		return unknownError
	}
	msg := strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n ")
	if msg == "" {
		return unknownError
	}
	return msg
}

type systemPresenter struct{}

// Present shows a MessageBox and blocks until it is closed.
func (systemPresenter) Present(message, caption string, severity Severity, owner WindowHandle) error {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	title, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return err
	}

	ret, err := windows.MessageBox(windows.HWND(owner), text, title, uint32(severity))
	if ret == 0 {
		kit.Logger().Warn("winapi: MessageBox failed", "caption", caption, "err", err)
		return err
	}
	return nil
}
