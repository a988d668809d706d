//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/boostgo/capfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := createRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCapmkdir(t *testing.T) {
	oldMask := unix.Umask(0o022)
	defer unix.Umask(oldMask)

	t.Run("Parents", func(t *testing.T) {
		root := t.TempDir()

		out, err := run(t, "--root", root, "-p", "-v", "a/b/c")
		require.NoError(t, err)
		assert.Contains(t, out, "created directory 'a/b/c'")
		assert.DirExists(t, filepath.Join(root, "a", "b", "c"))
	})

	t.Run("WithoutParents", func(t *testing.T) {
		root := t.TempDir()

		_, err := run(t, "--root", root, "x/y")
		require.Error(t, err)
		assert.ErrorIs(t, err, capfs.KindNotFound)
		assert.NoDirExists(t, filepath.Join(root, "x"))
	})

	t.Run("Mode", func(t *testing.T) {
		root := t.TempDir()

		_, err := run(t, "--root", root, "-m", "700", "private")
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(root, "private"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	})

	t.Run("InvalidMode", func(t *testing.T) {
		root := t.TempDir()

		_, err := run(t, "--root", root, "-m", "9z", "dir")
		assert.Error(t, err)
		assert.NoDirExists(t, filepath.Join(root, "dir"))
	})

	t.Run("EscapeRejected", func(t *testing.T) {
		root := t.TempDir()

		_, err := run(t, "--root", root, "-p", "../outside")
		assert.ErrorIs(t, err, capfs.KindBoundaryViolation)
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, err := run(t, "--root", t.TempDir())
		assert.Error(t, err)
	})
}
