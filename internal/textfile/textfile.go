// Package textfile reads and rewrites whole text files. The target is
// always loaded fully into memory, mutated elsewhere, and written back
// over the original path.
package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/codewright/retouch-cli/internal/utils"
)

// ErrNotText indicates the file content is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Read loads the entire file into memory and verifies it is text.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("target file not found at %s: %w", path, err)
		}
		return "", fmt.Errorf("read target: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return string(b), nil
}

// Write overwrites path with content using atomic write.
func Write(path, content string) error {
	return utils.SafeWriteFile(path, []byte(content))
}

// Backup copies the current content of path to path+suffix so the
// pristine file survives the in-place rewrite. The backup itself is
// overwritten on each run.
func Backup(path, suffix string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read for backup: %w", err)
	}
	bak := path + suffix
	if err := os.WriteFile(bak, b, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return bak, nil
}
