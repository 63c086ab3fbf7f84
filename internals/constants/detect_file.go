package constants

import (
	"path/filepath"
	"strings"
)

// Upload kinds, stored on notification attachments and registration evidence.
const (
	FileKindUnknown = 99
	FileKindImage   = 1
	FileKindPDF     = 2
	FileKindDoc     = 3
)

func DetectFileKindFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	case ".pdf":
		return FileKindPDF
	case ".doc", ".docx":
		return FileKindDoc
	default:
		return FileKindUnknown
	}
}
