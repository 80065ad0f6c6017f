package ingest

import (
	"path/filepath"
	"strings"

	"github.com/scanfolio/cv-scanner/constants"
)

// AllowedExt reports whether the extension names a scannable CV image
// (jpg, jpeg, png, tif, tiff). Case and a leading dot are ignored.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
