package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// maxLineSize bounds a single token line
const maxLineSize = 1 << 20

// FileError describes a corpus file or directory that could not be opened or read
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err was caused by a missing file or directory
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermission reports whether err was caused by missing access rights
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsUnreadable reports whether err came from opening or reading a corpus path.
// Missing and inaccessible files are both unreadable.
func IsUnreadable(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) || IsNotFound(err) || IsPermission(err)
}

// ReadTokens reads a pre-tokenized file, one token per line.
// Surrounding whitespace is trimmed from every line; blank lines yield the empty token.
func ReadTokens(path string) ([]string, error) {
	var tokens []string
	err := EachToken(path, func(token string) {
		tokens = append(tokens, token)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// EachToken streams the tokens of a file to fn. The file is closed before returning
// on every path.
func EachToken(path string, fn func(token string)) error {
	file, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fn(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}

	return nil
}
