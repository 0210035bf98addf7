package upload_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/core/upload"
	"github.com/thirawat/librarium/internal/platform/apperr"
)

func multipartFile(t *testing.T, filename string, content []byte) (*multipart.FileHeader, multipart.File) {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := request.FormFile("file")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	return header, file
}

/*
TestService_Save stores an ebook file and returns its public URL.
*/
func TestService_Save(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := upload.NewService(dir, "http://localhost:8088", logger)

	header, file := multipartFile(t, "my novel.pdf", []byte("%PDF-1.7"))

	result, err := service.Save(upload.KindEbook, header, file)
	require.NoError(t, err)
	assert.Contains(t, result.URL, "http://localhost:8088/static/ebooks/")
	assert.Contains(t, result.URL, "my_novel.pdf")

	entries, err := os.ReadDir(filepath.Join(dir, "ebooks"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

/*
TestService_Save_RejectsExtension refuses a file outside the whitelist for
its category.
*/
func TestService_Save_RejectsExtension(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := upload.NewService(dir, "", logger)

	header, file := multipartFile(t, "malware.exe", []byte("MZ"))

	_, err := service.Save(upload.KindEbook, header, file)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	// A cover extension is also invalid for the ebook category.
	coverHeader, coverFile := multipartFile(t, "cover.png", []byte{0x89, 'P', 'N', 'G'})
	_, err = service.Save(upload.KindEbook, coverHeader, coverFile)
	require.Error(t, err)
}
