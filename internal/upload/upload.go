package upload

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Save writes the uploaded file to a uniquely named temp file under dir
// and returns its path plus a cleanup func. The caller defers cleanup so
// the file is removed on every exit path, including extraction failures.
func Save(fh *multipart.FileHeader, dir string) (string, func(), error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, uuid.New().String()+strings.ToLower(filepath.Ext(fh.Filename)))

	src, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("failed to save upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("failed to save upload: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil {
			log.Printf("Warning: could not remove temp file %s: %v", path, err)
		}
	}
	return path, cleanup, nil
}
