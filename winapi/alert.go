package winapi

import (
	"errors"
	"fmt"
)

// Win32 MessageBox style bits.
const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
)

// Severity selects the icon of an alert dialog. Its value is the Win32
// MessageBox style.
type Severity uint32

const (
	SeverityInfo    Severity = mbIconInformation | mbOK
	SeverityWarning Severity = mbIconWarning | mbOK
	SeverityError   Severity = mbIconError | mbOK
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return fmt.Sprintf("Severity(%#x)", uint32(s))
	}
}

// WindowHandle identifies the owner window of a dialog. Zero means none.
type WindowHandle uintptr

// DefaultCaption is the dialog title used when none is given.
const DefaultCaption = "Alert"

// ErrAlertUnsupported is returned by ShowAlert when the platform has no
// dialog backend and no presenter was supplied.
var ErrAlertUnsupported = errors.New("winapi: alert dialogs are not supported on this platform")

// AlertPresenter shows a modal alert and blocks until it is dismissed.
type AlertPresenter interface {
	Present(message, caption string, severity Severity, owner WindowHandle) error
}

// AlertOption configures ShowAlert.
type AlertOption func(*alertOptions)

type alertOptions struct {
	caption   string
	owner     WindowHandle
	presenter AlertPresenter
}

func defaultAlertOptions() alertOptions {
	return alertOptions{
		caption:   DefaultCaption,
		presenter: systemPresenter{},
	}
}

// WithCaption sets the dialog title.
func WithCaption(caption string) AlertOption {
	return func(o *alertOptions) {
		o.caption = caption
	}
}

// WithOwner sets the owner window.
func WithOwner(h WindowHandle) AlertOption {
	return func(o *alertOptions) {
		o.owner = h
	}
}

// WithPresenter replaces the platform dialog backend.
// A nil presenter is ignored.
func WithPresenter(p AlertPresenter) AlertOption {
	return func(o *alertOptions) {
		if p != nil {
			o.presenter = p
		}
	}
}

// ShowAlert presents a modal dialog with message and blocks the calling
// goroutine until the user dismisses it.
//
// On Windows the dialog is a MessageBox, which must be shown from a thread
// that can pump messages; call it from the UI goroutine (typically one
// locked with runtime.LockOSThread).
func ShowAlert(message string, severity Severity, opts ...AlertOption) error {
	o := defaultAlertOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.presenter.Present(message, o.caption, severity, o.owner)
}
