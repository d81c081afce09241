// File: iofile/file.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package iofile

import (
	"fmt"
	"os"
)

// ReadAll reads the entire contents of path.
func ReadAll(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iofile: read %s: %w", path, err)
	}
	return b, nil
}

// WriteAll writes data to path, creating it with mode 0644 if it does not
// exist and truncating it if it does.
func WriteAll(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("iofile: write %s: %w", path, err)
	}
	return nil
}

// AppendAll opens path for appending (creating it if necessary) and
// writes data at the end.
func AppendAll(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("iofile: open %s for append: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("iofile: append %s: %w", path, err)
	}
	return nil
}
