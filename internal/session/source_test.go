package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanfolio/cv-scanner/internal/common"
)

func TestFileSourceAcquireAndCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.jpg")
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o600))

	src := NewFileSource(path)
	require.NoError(t, src.Acquire())

	got, err := src.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, got)
	src.Release()
}

func TestFileSourceMissingFile(t *testing.T) {
	err := NewFileSource(filepath.Join(t.TempDir(), "nope.png")).Acquire()

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
}

func TestFileSourceDirectoryRejected(t *testing.T) {
	err := NewFileSource(t.TempDir()).Acquire()

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
}

func TestFileSourceUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	err := NewFileSource(path).Acquire()

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
}
