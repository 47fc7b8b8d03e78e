// Package prompt asks the user which readability score to calculate.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/verte-zerg/readage/internal/readability"
)

// ErrNoInput is returned when input ends before a selection is entered.
var ErrNoInput = errors.New("no metric selected")

// Text is the question shown before reading the selection.
func Text() string {
	return fmt.Sprintf("Enter the score you want to calculate (%s): ", readability.SelectionList())
}

// ReadSelection writes the prompt to w and parses the next
// whitespace-delimited token read from r.
func ReadSelection(r io.Reader, w io.Writer) (readability.Selection, error) {
	if _, err := io.WriteString(w, Text()); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}
		return "", ErrNoInput
	}
	return readability.ParseSelection(scanner.Text())
}
