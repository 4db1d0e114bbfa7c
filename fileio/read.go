package fileio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gogpu/kit"
)

var errIsDirectory = errors.New("path is a directory")

var errBlockPastEnd = errors.New("block extends past end of file")

// open opens path for reading after checking that it exists and is not a
// directory. The caller must close the returned file.
func open(path kit.Path) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if fi.IsDir() {
		return nil, nil, errIsDirectory
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, fi, nil
}

// absent logs why op produced no value and returns an empty Option.
func absent[T any](op string, path kit.Path, err error) kit.Option[T] {
	kit.Logger().Debug("fileio: "+op+" returned nothing", "path", path, "err", err)
	return kit.None[T]()
}

// ReadText returns the whole file as a string. The content is not decoded
// or translated.
func ReadText(path kit.Path) kit.Option[string] {
	data, err := readAll(path)
	if err != nil {
		return absent[string]("ReadText", path, err)
	}
	return kit.Some(string(data))
}

// ReadBytes returns the whole file as raw bytes.
func ReadBytes(path kit.Path) kit.Option[[]byte] {
	data, err := readAll(path)
	if err != nil {
		return absent[[]byte]("ReadBytes", path, err)
	}
	return kit.Some(data)
}

func readAll(path kit.Path) ([]byte, error) {
	f, _, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// ReadLines returns the lines of the file in file order, without their
// terminators. A trailing terminator does not produce an empty final line.
// On Windows a carriage return before the newline is stripped as well.
func ReadLines(path kit.Path) kit.Option[[]string] {
	f, _, err := open(path)
	if err != nil {
		return absent[[]string]("ReadLines", path, err)
	}
	defer f.Close()

	lines := []string{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, trimLineEnding(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return absent[[]string]("ReadLines", path, err)
		}
	}
	return kit.Some(lines)
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	if stripCarriageReturn {
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}

// ReadBlock reads exactly size bytes starting offset bytes into the file.
// A short read is reported as absence; partial blocks are never returned.
func ReadBlock(path kit.Path, offset uint32, size int) kit.Option[[]byte] {
	if size < 0 {
		return absent[[]byte]("ReadBlock", path, errors.New("negative block size"))
	}

	f, fi, err := open(path)
	if err != nil {
		return absent[[]byte]("ReadBlock", path, err)
	}
	defer f.Close()

	// Reject before allocating: size may be far larger than the file.
	if int64(size) > fi.Size()-int64(offset) {
		return absent[[]byte]("ReadBlock", path, errBlockPastEnd)
	}

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return absent[[]byte]("ReadBlock", path, err)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return absent[[]byte]("ReadBlock", path, err)
	}
	return kit.Some(buf)
}
