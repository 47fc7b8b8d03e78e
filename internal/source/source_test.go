package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFirstLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "The cat sat on the mat.", "The cat sat on the mat."},
		{"trailing newline", "Hello there.\n", "Hello there."},
		{"ignores rest", "First line.\nSecond line.\nThird.", "First line."},
		{"crlf", "Windows text.\r\nMore.", "Windows text."},
		{"blank first line", "\nSecond.", ""},
		{"crlf only", "\r\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFirstLine(writeFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFirstLineLong(t *testing.T) {
	line := strings.Repeat("word ", 1<<19)
	require.Greater(t, len(line), 2<<20)
	got, err := ReadFirstLine(writeFile(t, line+"\nnext"))
	require.NoError(t, err)
	assert.Equal(t, line, got)
}

func TestReadFirstLineLongWithoutNewline(t *testing.T) {
	line := strings.Repeat("a", 3<<20)
	got, err := ReadFirstLine(writeFile(t, line))
	require.NoError(t, err)
	assert.Len(t, got, len(line))
}

func TestReadFirstLineEmpty(t *testing.T) {
	_, err := ReadFirstLine(writeFile(t, ""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadFirstLineMissing(t *testing.T) {
	_, err := ReadFirstLine(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
