// Package fileio reads and writes whole files by path.
//
// Read helpers return a [kit.Option]: the value when the path names an
// existing, openable regular file and the read succeeded, nothing otherwise.
// Write helpers return true when the file could be created or truncated.
// They do not confirm that every byte reached the file.
//
// Every call opens and closes its own handle. Nothing is cached and no state
// is shared between calls.
package fileio
