package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type DiskStorage struct {
	uploadDir string
}

func NewDiskStorage(uploadDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{uploadDir: uploadDir}, nil
}

func (d *DiskStorage) SaveAvatar(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) error {
	// Object names are generated by the service, but never trust a name
	// that escapes the upload directory.
	if strings.Contains(objectName, "/") || strings.Contains(objectName, "\\") || strings.Contains(objectName, "..") {
		return fmt.Errorf("invalid object name: %s", objectName)
	}

	path := filepath.Join(d.uploadDir, objectName)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write avatar file: %w", err)
	}

	return nil
}

func (d *DiskStorage) DeleteAvatar(ctx context.Context, objectName string) error {
	path := filepath.Join(d.uploadDir, objectName)

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete avatar file: %w", err)
	}

	return nil
}
