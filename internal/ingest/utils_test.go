package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".jpg"))
	assert.True(t, AllowedExt("PNG"))
	assert.True(t, AllowedExt("tiff"))
	assert.False(t, AllowedExt("pdf"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.hidden"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/tmp/cv.jpg"))
}
