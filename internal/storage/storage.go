// Package storage persists uploaded avatar images. The disk driver is the
// default; the MinIO driver is selected with STORAGE_DRIVER=minio.
package storage

import (
	"context"
	"fmt"
	"io"

	"insighthub/internal/config"
)

type Storage interface {
	// SaveAvatar stores the (already validated and resized) image bytes
	// under objectName.
	SaveAvatar(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) error
	DeleteAvatar(ctx context.Context, objectName string) error
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case "disk":
		return NewDiskStorage(cfg.Storage.UploadDir)
	case "minio":
		return NewMinIOStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
