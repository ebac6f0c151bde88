package artifact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/viant/afs"
)

// ErrUploadFailed is returned when artifact could not be stored
var ErrUploadFailed = errors.New("upload failed")

// Uploader stores artifact data at destination URL
type Uploader interface {
	Upload(ctx context.Context, data []byte, destination string) error
}

// StorageUploader uploads artifacts with afs, destination can be any afs supported URL
type StorageUploader struct {
	fs afs.Service
}

// Upload uploads data, existing destination is overwritten
func (u *StorageUploader) Upload(ctx context.Context, data []byte, destination string) error {
	if err := u.fs.Upload(ctx, destination, os.FileMode(0644), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w: %v", destination, ErrUploadFailed, err)
	}
	return nil
}

// NewStorageUploader creates storage uploader, nil fs defaults to afs.New()
func NewStorageUploader(fs afs.Service) *StorageUploader {
	if fs == nil {
		fs = afs.New()
	}
	return &StorageUploader{fs: fs}
}
