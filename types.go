package kit

import "math"

// Fixed-width numeric names.
type (
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64
	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64
	F32 = float32
	F64 = float64
)

// Str is a narrow (UTF-8) string.
type Str = string

// WStr is a wide string: a sequence of UTF-16 code units.
// See winapi.WideToNarrow and winapi.NarrowToWide.
type WStr = []uint16

// Path is a filesystem path.
type Path = string

// Shared and Unique are pointer names. Go has a single pointer kind, so
// both resolve to *T; the names only document ownership at call sites.
type (
	Shared[T any] = *T
	Unique[T any] = *T
)

// Vector is an ordered, growable sequence.
type Vector[T any] = []T

// Positive infinities.
var (
	Inf32 = float32(math.Inf(1))
	Inf64 = math.Inf(1)
)
