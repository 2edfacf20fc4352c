package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrFileType rejects uploads whose extension is outside the allow-set.
var ErrFileType = errors.New("file type not allowed")

var allowedExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
}

// AllowedFile reports whether the filename carries an allowed image
// extension (case-insensitive).
func AllowedFile(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[idx+1:])]
}

// SecureFilename strips path components and collapses anything outside
// [A-Za-z0-9._-] to an underscore, so the result is safe to join onto the
// upload directory.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.TrimLeft(b.String(), ".")
	if cleaned == "" {
		cleaned = "upload"
	}
	return cleaned
}

// StoreUpload persists an optional uploaded photo into dir and returns the
// stored filename. A nil header or empty original filename means no photo
// was attached; that is success with an empty name. The stored name is the
// sanitized original prefixed with the current UTC Unix timestamp, which
// keeps re-submissions of the same filename from colliding across seconds.
func StoreUpload(file *multipart.FileHeader, dir string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}
	if !AllowedFile(file.Filename) {
		return "", ErrFileType
	}

	stored := fmt.Sprintf("%d_%s", time.Now().UTC().Unix(), SecureFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, stored))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return stored, nil
}
