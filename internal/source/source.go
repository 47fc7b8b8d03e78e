// Package source loads the text to analyze from a file.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyFile is returned when the file has no first line to read.
var ErrEmptyFile = errors.New("file is empty")

// ReadFirstLine returns the first line of the file at path without its line
// terminator. Remaining lines are ignored and the line length is unbounded.
func ReadFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		if line == "" {
			return "", fmt.Errorf("%s: %w", path, ErrEmptyFile)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
