package testhelpers

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"pdfmerge.dev/pdfmerge/internal/pdf"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful for test setup code where errors are
// not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectPageCount asserts that the PDF at path has the expected number of pages.
func ExpectPageCount(t *testing.T, path string, expected int) {
	t.Helper()

	count, err := pdf.PageCount(path)
	require.NoError(t, err, "Failed to count pages of %s", path)
	require.Equal(t, expected, count, "Unexpected page count for %s", path)
}

// FileHash returns the SHA-256 hex digest of a file's content.
func FileHash(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read %s", path)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ExpectFileExists asserts that a regular file exists at path.
func ExpectFileExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "Expected %s to exist", path)
	require.False(t, info.IsDir())
}

// ExpectFileAbsent asserts that nothing exists at path.
func ExpectFileAbsent(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "Expected %s to be absent", path)
}
