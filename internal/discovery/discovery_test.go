package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pdfmerge.dev/pdfmerge/internal/discovery"
	"pdfmerge.dev/pdfmerge/internal/errors"
	"pdfmerge.dev/pdfmerge/testhelpers"
)

func TestScan(t *testing.T) {
	t.Run("lists pdf files sorted with 1-based indices", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			for _, name := range []string{"b.pdf", "a.pdf", "c.pdf"} {
				if _, err := s.WritePDF(name, 1); err != nil {
					return err
				}
			}
			return nil
		})

		candidates, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, discovery.Names(candidates))
		for i, c := range candidates {
			require.Equal(t, i+1, c.Index)
			require.Equal(t, filepath.Join(scene.Dir, c.Name), c.Path)
			require.Greater(t, c.Size, int64(0))
		}
	})

	t.Run("scan is deterministic across runs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			for _, name := range []string{"z.pdf", "m.pdf", "a.pdf"} {
				if _, err := s.WritePDF(name, 1); err != nil {
					return err
				}
			}
			return nil
		})

		first, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		second, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("ignores non-pdf files and subdirectories", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if _, err := s.WritePDF("doc.pdf", 1); err != nil {
				return err
			}
			if _, err := s.WriteFile("notes.txt", []byte("notes")); err != nil {
				return err
			}
			if _, err := s.WriteFile("archive.pdf.bak", []byte("backup")); err != nil {
				return err
			}
			return os.Mkdir(filepath.Join(s.Dir, "nested.pdf"), 0755)
		})

		candidates, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, []string{"doc.pdf"}, discovery.Names(candidates))
	})

	t.Run("matches extension case-insensitively", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			_, err := s.WritePDF("REPORT.PDF", 1)
			return err
		})

		candidates, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, []string{"REPORT.PDF"}, discovery.Names(candidates))
	})

	t.Run("excludes the reserved output file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if _, err := s.WritePDF("a.pdf", 1); err != nil {
				return err
			}
			_, err := s.WritePDF("merged_output.pdf", 3)
			return err
		})

		candidates, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, []string{"a.pdf"}, discovery.Names(candidates))
	})

	t.Run("excludes dotfiles", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if _, err := s.WritePDF("a.pdf", 1); err != nil {
				return err
			}
			_, err := s.WritePDF(".hidden.pdf", 1)
			return err
		})

		candidates, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.NoError(t, err)
		require.Equal(t, []string{"a.pdf"}, discovery.Names(candidates))
	})

	t.Run("empty directory yields ErrNoCandidates", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		_, err := discovery.Scan(scene.Dir, "merged_output.pdf")
		require.ErrorIs(t, err, errors.ErrNoCandidates)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, err := discovery.Scan("/nonexistent/path/for/pdfmerge", "merged_output.pdf")
		require.Error(t, err)
		require.NotErrorIs(t, err, errors.ErrNoCandidates)
	})
}

func TestIsPDFName(t *testing.T) {
	require.True(t, discovery.IsPDFName("a.pdf"))
	require.True(t, discovery.IsPDFName("A.PDF"))
	require.True(t, discovery.IsPDFName("a.pDf"))
	require.False(t, discovery.IsPDFName("a.pdf.txt"))
	require.False(t, discovery.IsPDFName("apdf"))
	require.False(t, discovery.IsPDFName("a.ps"))
}
