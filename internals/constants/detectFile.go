package constants

import (
	"path/filepath"
	"strings"
)

// Material kinds that can be told apart by file extension. The full kind
// set lives on the study material enum; ncert and pyq are curator calls,
// not detectable from a URL.
const (
	MaterialKindNotes = "notes"
	MaterialKindPDF   = "pdf"
)

// DetectMaterialKindFromExt guesses a material kind for an uploaded file.
// Images are not materials themselves (they become covers) and return "".
func DetectMaterialKindFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return MaterialKindPDF
	case ".md", ".txt", ".doc", ".docx":
		return MaterialKindNotes
	default:
		return ""
	}
}

// IsImageExt reports whether the file should go through the webp
// re-encode pipeline before upload.
func IsImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	}
	return false
}
