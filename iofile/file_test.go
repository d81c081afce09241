// File: iofile/file_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package iofile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadAppend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")

	require.NoError(t, WriteAll(path, []byte("hello")))
	got, err := ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))

	require.NoError(t, AppendAll(path, []byte(" world")))
	got, err = ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(got))
}

func TestReadAll_MissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
