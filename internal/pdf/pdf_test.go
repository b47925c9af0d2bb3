package pdf_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pdfmerge.dev/pdfmerge/internal/errors"
	"pdfmerge.dev/pdfmerge/internal/pdf"
	"pdfmerge.dev/pdfmerge/testhelpers"
)

func TestPageCount(t *testing.T) {
	t.Run("counts pages", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		path := testhelpers.Must(scene.WritePDF("five.pdf", 5))

		count, err := pdf.PageCount(path)
		require.NoError(t, err)
		require.Equal(t, 5, count)
	})

	t.Run("fails on a non-pdf file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		path := testhelpers.Must(scene.WriteFile("fake.pdf", []byte("not a pdf at all")))

		_, err := pdf.PageCount(path)
		require.ErrorIs(t, err, errors.ErrUnreadableInput)
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid pdf", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		path := testhelpers.Must(scene.WritePDF("ok.pdf", 2))

		require.NoError(t, pdf.Validate(path))
	})

	t.Run("rejects garbage with a typed error naming the file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		path := testhelpers.Must(scene.WriteFile("broken.pdf", []byte("%PDF-1.4 truncated")))

		err := pdf.Validate(path)
		require.ErrorIs(t, err, errors.ErrUnreadableInput)
		require.Contains(t, err.Error(), "broken.pdf")
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		err := pdf.Validate(scene.Path("gone.pdf"))
		require.ErrorIs(t, err, errors.ErrUnreadableInput)
	})
}

func TestMerge(t *testing.T) {
	t.Run("output page count is the sum of the inputs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		a := testhelpers.Must(scene.WritePDF("a.pdf", 2))
		b := testhelpers.Must(scene.WritePDF("b.pdf", 3))
		out := scene.Path("merged_output.pdf")

		require.NoError(t, pdf.Merge([]string{b, a}, out))
		testhelpers.ExpectPageCount(t, out, 5)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		a := testhelpers.Must(scene.WritePDF("a.pdf", 2))
		b := testhelpers.Must(scene.WritePDF("b.pdf", 3))
		hashA := testhelpers.FileHash(t, a)
		hashB := testhelpers.FileHash(t, b)

		require.NoError(t, pdf.Merge([]string{a, b}, scene.Path("merged_output.pdf")))

		require.Equal(t, hashA, testhelpers.FileHash(t, a))
		require.Equal(t, hashB, testhelpers.FileHash(t, b))
	})

	t.Run("a single input produces an output with the same page count", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		a := testhelpers.Must(scene.WritePDF("a.pdf", 4))
		out := scene.Path("merged_output.pdf")

		require.NoError(t, pdf.Merge([]string{a}, out))
		testhelpers.ExpectPageCount(t, out, 4)
	})

	t.Run("empty input list is rejected", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		err := pdf.Merge(nil, scene.Path("merged_output.pdf"))
		require.ErrorIs(t, err, errors.ErrInvalidSelection)
		testhelpers.ExpectFileAbsent(t, scene.Path("merged_output.pdf"))
	})

	t.Run("failure leaves no partial output or temp file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		good := testhelpers.Must(scene.WritePDF("good.pdf", 1))
		bad := testhelpers.Must(scene.WriteFile("bad.pdf", []byte("junk")))
		out := scene.Path("merged_output.pdf")

		err := pdf.Merge([]string{good, bad}, out)
		require.ErrorIs(t, err, errors.ErrWriteFailure)
		testhelpers.ExpectFileAbsent(t, out)

		entries, err := os.ReadDir(scene.Dir)
		require.NoError(t, err)
		for _, entry := range entries {
			require.False(t, strings.HasSuffix(entry.Name(), ".tmp"),
				"temp file %s left behind", entry.Name())
		}
	})

	t.Run("unwritable output directory is a write failure", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		a := testhelpers.Must(scene.WritePDF("a.pdf", 1))

		err := pdf.Merge([]string{a}, filepath.Join(scene.Dir, "no-such-subdir", "out.pdf"))
		require.ErrorIs(t, err, errors.ErrWriteFailure)
	})
}
