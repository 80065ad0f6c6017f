package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scanfolio/cv-scanner/constants"
	"github.com/scanfolio/cv-scanner/internal/common"
)

// ImageSource acquires a still image from either a live camera stream or
// a user-selected file. It is the only exclusive resource in a capture
// session: Acquire and Release must stay symmetric on every exit path.
type ImageSource interface {
	// Acquire claims the underlying device or file handle.
	Acquire() error
	// Capture produces the path of one captured image.
	Capture(ctx context.Context) (string, error)
	// Release frees the resource. Safe to call more than once.
	Release()
}

// FileSource serves a user-selected image file. The camera adapter of the
// surrounding application implements the same contract.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Acquire() error {
	st, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAcquisition, err)
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s is a directory", common.ErrAcquisition, f.Path)
	}
	ext := constants.NormalizeExt(filepath.Ext(f.Path))
	if constants.MapExtToFormat(ext) == "" {
		return fmt.Errorf("%w: unsupported extension %q", common.ErrAcquisition, ext)
	}
	return nil
}

func (f *FileSource) Capture(_ context.Context) (string, error) {
	return f.Path, nil
}

func (f *FileSource) Release() {}
