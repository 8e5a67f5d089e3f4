package helper

import (
	"path/filepath"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// SanitizeFilename strips all whitespace from a client-supplied file
// name. The result keys the chunk set, so it must be deterministic for
// every chunk of one upload.
func SanitizeFilename(name string) string {
	return whitespace.ReplaceAllString(filepath.Base(name), "")
}

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webm":
		return "video/webm"
	case ".mp4":
		return "video/mp4"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}

func IsVideoMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/") || mimeType == "application/octet-stream"
}

func IsImageMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
