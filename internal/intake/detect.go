package intake

import (
	"path/filepath"
	"strings"
)

// Recognized file type names, as stored in the file type vocabulary.
const (
	TypePDF  = "pdf"
	TypeEPUB = "epub"
)

// FileInfo carries the two signals available for classifying an upload.
type FileInfo struct {
	MimeType string
	Name     string
}

// DetectType classifies an upload as "pdf" or "epub", or returns "" when
// neither the declared MIME type nor the filename extension is recognized.
//
// The MIME type is consulted first because browsers sometimes upload ebooks
// under generic names; the extension is the fallback, matched
// case-insensitively.
func DetectType(file FileInfo) string {
	mime := strings.ToLower(file.MimeType)
	switch {
	case strings.Contains(mime, TypePDF):
		return TypePDF
	case strings.Contains(mime, TypeEPUB):
		return TypeEPUB
	}

	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".pdf":
		return TypePDF
	case ".epub":
		return TypeEPUB
	}

	return ""
}

// DetectType memoizes classification per file name within the session, so
// resubmitting the same form never reclassifies an upload.
func (session *Session) DetectType(file FileInfo) string {
	if file.Name != "" {
		if detected, ok := session.detections[file.Name]; ok {
			return detected
		}
	}

	detected := DetectType(file)
	if file.Name != "" {
		session.detections[file.Name] = detected
	}
	return detected
}
