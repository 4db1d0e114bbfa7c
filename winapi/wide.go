package winapi

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// WideToNarrow converts UTF-16 code units to a UTF-8 string.
// Unpaired surrogates are replaced with U+FFFD.
func WideToNarrow(wide []uint16) (string, error) {
	buf := make([]byte, 2*len(wide))
	for i, u := range wide {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	out, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NarrowToWide converts a UTF-8 string to UTF-16 code units, without a
// terminator. Invalid UTF-8 is replaced with U+FFFD.
func NarrowToWide(narrow string) ([]uint16, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(narrow))
	if err != nil {
		return nil, err
	}
	wide := make([]uint16, len(b)/2)
	for i := range wide {
		wide[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return wide, nil
}
