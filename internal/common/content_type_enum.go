package common

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// MediaFileType classifies a stored picture file by its MIME type.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeOther MediaFileType = "other"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeOther
}

func DetectFileType(mimeType string) MediaFileType {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return MediaFileTypeImage
	}
	return MediaFileTypeOther
}

// FileExtension returns the lowercased extension of filename without the dot.
func FileExtension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func IsAllowedExtension(filename string, allowed []string) bool {
	ext := FileExtension(filename)
	return ext != "" && lo.Contains(allowed, ext)
}

// ContentTypeFor maps a picture filename to the Content-Type it is served with.
func ContentTypeFor(filename string) string {
	switch FileExtension(filename) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
