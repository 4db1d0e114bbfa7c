// Package kit is a collection of small, independent helpers shared by the
// gogpu tools.
//
// # Overview
//
// The root package holds fixed-width numeric names, the [Option] value type
// and the shared logger. The sub-packages are independent of each other:
//
//   - fileio: whole-file and block reads and writes that report absence
//     instead of errors
//   - winapi: platform status codes, alert dialogs and UTF-16 conversion
//   - mathutil: generic linear interpolation
//   - color: 0xAARRGGBB packing and unpacking
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/kit/color"
//	    "github.com/gogpu/kit/fileio"
//	)
//
//	if text, ok := fileio.ReadText("notes.txt").Get(); ok {
//	    fmt.Println(text)
//	}
//
//	r, g, b, a := color.HexToRGBAInt(0x80FF0000) // 255, 0, 0, 128
//
// # Logging
//
// kit is silent by default. Call [SetLogger] to receive debug records
// explaining why a helper reported absence.
package kit
