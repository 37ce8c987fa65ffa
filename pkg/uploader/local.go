package uploader

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalUploader writes uploads to a directory served as static files.
// Used in development when no bucket is configured.
type LocalUploader struct {
	dir       string
	urlPrefix string
}

func NewLocalUploader(dir, urlPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{dir: dir, urlPrefix: urlPrefix}, nil
}

// Upload writes the stream to disk and returns the static URL path
func (u *LocalUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	object := objectName(filename)

	f, err := os.Create(filepath.Join(u.dir, object))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path.Join(u.urlPrefix, object), nil
}
