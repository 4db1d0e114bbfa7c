//go:build !windows

package fileio

// LineEnding terminates each line written by WriteLines.
const LineEnding = "\n"

const stripCarriageReturn = false
