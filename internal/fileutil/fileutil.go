// Package fileutil writes output artifacts atomically so a failed run never
// leaves truncated reference or translation files behind.
package fileutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteLines writes one line per element to path, newline-terminated, via a
// temporary file in the same directory renamed into place on success.
func WriteLines(path string, lines []string) error {
	data := make([]byte, 0, 64*len(lines))
	for _, line := range lines {
		data = append(data, line...)
		data = append(data, '\n')
	}
	return WriteFileAtomic(path, data, 0o644)
}

// WriteFileAtomic writes data to path through a temp file plus rename.
// The rename is atomic on POSIX filesystems as long as the temp file lives in
// the destination directory.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
