package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaFileType_String(t *testing.T) {
	assert.Equal(t, "image", MediaFileTypeImage.String())
	assert.Equal(t, "other", MediaFileTypeOther.String())
}

func TestMediaFileType_IsValid(t *testing.T) {
	assert.True(t, MediaFileTypeImage.IsValid())
	assert.True(t, MediaFileTypeOther.IsValid())
	assert.False(t, MediaFileType("video").IsValid())
}

func TestDetectFileType(t *testing.T) {
	for _, mimeType := range []string{"image/jpeg", "IMAGE/PNG", "image/gif", "image/webp"} {
		assert.Equal(t, MediaFileTypeImage, DetectFileType(mimeType), "Failed for MIME type: %s", mimeType)
	}
	for _, mimeType := range []string{"video/mp4", "application/pdf", ""} {
		assert.Equal(t, MediaFileTypeOther, DetectFileType(mimeType), "Failed for MIME type: %s", mimeType)
	}
}

func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{"png", "jpg", "jpeg", "gif"}

	tests := []struct {
		filename string
		want     bool
	}{
		{"eiffel.PNG", true},
		{"louvre.jpeg", true},
		{"notes.txt", false},
		{"noext", false},
		{"archive.tar.gif", true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsAllowedExtension(tc.filename, allowed), tc.filename)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.JPG"))
	assert.Equal(t, "image/png", ContentTypeFor("a.png"))
	assert.Equal(t, "image/gif", ContentTypeFor("a.gif"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a.bin"))
}
