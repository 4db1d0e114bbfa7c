// Package winapi wraps a few Windows facilities behind portable interfaces:
// status-code translation, status checks that produce typed errors, modal
// alert dialogs, and UTF-16 string conversion.
//
// The Windows backends are compiled only for GOOS=windows. On other
// platforms the package still builds: [TranslateErrorCode] reports
// "Unknown error" and [ShowAlert] returns [ErrAlertUnsupported] unless a
// presenter is supplied with [WithPresenter].
package winapi
