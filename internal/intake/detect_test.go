package intake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thirawat/librarium/internal/intake"
)

/*
TestDetectType exercises every classification branch: MIME match, extension
fallback, and the undetectable case.
*/
func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		file intake.FileInfo
		want string
	}{
		{"pdf_mime", intake.FileInfo{MimeType: "application/pdf", Name: "whatever.bin"}, "pdf"},
		{"epub_mime", intake.FileInfo{MimeType: "application/epub+zip", Name: "whatever.bin"}, "epub"},
		{"pdf_extension_no_mime", intake.FileInfo{Name: "book.pdf"}, "pdf"},
		{"epub_extension_no_mime", intake.FileInfo{Name: "book.epub"}, "epub"},
		{"uppercase_extension", intake.FileInfo{Name: "novel.PDF"}, "pdf"},
		{"mime_wins_over_extension", intake.FileInfo{MimeType: "application/epub+zip", Name: "book.pdf"}, "epub"},
		{"unknown_mime_and_extension", intake.FileInfo{MimeType: "application/zip", Name: "archive.zip"}, ""},
		{"no_signals_at_all", intake.FileInfo{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intake.DetectType(tt.file))
		})
	}
}
