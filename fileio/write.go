package fileio

import (
	"bufio"
	"os"

	"github.com/gogpu/kit"
)

// create truncates or creates path for writing.
func create(op string, path kit.Path) (*os.File, bool) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		kit.Logger().Debug("fileio: "+op+" could not open file", "path", path, "err", err)
		return nil, false
	}
	return f, true
}

// logWrite records a failed write. The write helpers still report success
// because their result only reflects whether the file could be opened.
func logWrite(op string, path kit.Path, err error) {
	if err != nil {
		kit.Logger().Debug("fileio: "+op+" write failed", "path", path, "err", err)
	}
}

// WriteText replaces the file's content with content, verbatim.
// No trailing newline is added.
func WriteText(path kit.Path, content string) bool {
	f, ok := create("WriteText", path)
	if !ok {
		return false
	}
	defer f.Close()

	_, err := f.WriteString(content)
	logWrite("WriteText", path, err)
	return true
}

// WriteBytes replaces the file's content with data.
func WriteBytes(path kit.Path, data []byte) bool {
	f, ok := create("WriteBytes", path)
	if !ok {
		return false
	}
	defer f.Close()

	_, err := f.Write(data)
	logWrite("WriteBytes", path, err)
	return true
}

// WriteLines replaces the file's content with lines, each followed by
// LineEnding.
func WriteLines(path kit.Path, lines []string) bool {
	f, ok := create("WriteLines", path)
	if !ok {
		return false
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		_, _ = w.WriteString(line)
		_, _ = w.WriteString(LineEnding)
	}
	logWrite("WriteLines", path, w.Flush())
	return true
}
