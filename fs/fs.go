// Package fs provides filesystem helpers for run artifacts.
package fs

import (
	"fmt"
	"os"
)

// WriteFileAtomic writes data to path by writing a temporary file first,
// fsyncing, and renaming it into place, so a crash mid-write never leaves a
// truncated source file or summary artifact behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// AppendEnv appends a KEY=value line to a GitHub Actions environment
// propagation file (the file named by GITHUB_ENV), creating it if needed.
func AppendEnv(path, key, value string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
